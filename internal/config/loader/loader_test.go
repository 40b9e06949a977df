package loader

import (
	"errors"
	"testing"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"resizable.toml", FormatTOML, false},
		{"/etc/resizable.TOML", FormatTOML, false},
		{"resizable.yaml", FormatYAML, false},
		{"resizable.yml", FormatYAML, false},
		{"resizable.json", "", true},
		{"resizable", "", true},
	}

	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatOf(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatOf(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestForPath(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", "[scene]\nwidth = 5\n")
	memfs.AddFile("/a.yaml", "scene:\n  width: 6\n")

	tomlLoader, err := ForPath(memfs, "/a.toml")
	if err != nil {
		t.Fatalf("ForPath(toml): %v", err)
	}
	if _, ok := tomlLoader.(*TOMLLoader); !ok {
		t.Errorf("ForPath(toml) = %T, want *TOMLLoader", tomlLoader)
	}
	cfg, err := tomlLoader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if val, _ := getByPath(cfg, "scene.width"); val != int64(5) {
		t.Errorf("scene.width = %v, want 5", val)
	}

	yamlLoader, err := ForPath(memfs, "/a.yaml")
	if err != nil {
		t.Fatalf("ForPath(yaml): %v", err)
	}
	cfg, err = yamlLoader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if val, _ := getByPath(cfg, "scene.width"); val != 6 {
		t.Errorf("scene.width = %v, want 6", val)
	}

	if _, err := ForPath(memfs, "/a.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForPath(ini) error = %v, want ErrUnsupportedFormat", err)
	}
}
