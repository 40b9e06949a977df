package resize

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Handles) != 0 {
		t.Errorf("default handles = %d, want 0", len(cfg.Handles))
	}
	if cfg.MinSize != (Size{}) {
		t.Errorf("default min size = %+v, want zero", cfg.MinSize)
	}
	if !cfg.Border.Enabled || cfg.Border.EdgeOffset != 10 || cfg.Border.AllowedDirections != All {
		t.Errorf("default border = %+v", cfg.Border)
	}
}

func TestConfigMergeFieldByField(t *testing.T) {
	cfg := DefaultConfig().Merge(Options{
		MinSize: &SizeOptions{Height: Ptr(40)},
		Border:  &BorderOptions{EdgeOffset: Ptr(4)},
	})

	if cfg.MinSize.Width != 0 || cfg.MinSize.Height != 40 {
		t.Errorf("min size = %+v, want {0 40}", cfg.MinSize)
	}
	if !cfg.Border.Enabled || cfg.Border.EdgeOffset != 4 || cfg.Border.AllowedDirections != All {
		t.Errorf("border = %+v, want enabled offset 4 all", cfg.Border)
	}
}

func TestConfigMergeReplacesHandles(t *testing.T) {
	base := DefaultConfig().Merge(Options{Handles: []Handle{
		{Target: Rect{Width: 1, Height: 1}, Direction: Up},
		{Target: Rect{Width: 1, Height: 1}, Direction: Down},
	}})

	kept := base.Merge(Options{})
	if len(kept.Handles) != 2 {
		t.Errorf("nil handles replaced the list: %d", len(kept.Handles))
	}

	replaced := base.Merge(Options{Handles: []Handle{{Target: Rect{}, Direction: Left}}})
	if len(replaced.Handles) != 1 || replaced.Handles[0].Direction != Left {
		t.Errorf("handles = %+v, want a single left handle", replaced.Handles)
	}

	cleared := base.Merge(Options{Handles: []Handle{}})
	if len(cleared.Handles) != 0 {
		t.Errorf("empty handles kept %d entries", len(cleared.Handles))
	}
}

func TestConfigMergeMasksDirections(t *testing.T) {
	cfg := DefaultConfig().Merge(Options{Border: &BorderOptions{AllowedDirections: Ptr(Direction(0xFF))}})
	if cfg.Border.AllowedDirections != All {
		t.Errorf("allowed = %v, want all", cfg.Border.AllowedDirections)
	}
}

func TestConfigMergeDoesNotAlias(t *testing.T) {
	handles := []Handle{{Target: Rect{}, Direction: Up}}
	cfg := DefaultConfig().Merge(Options{Handles: handles})
	handles[0].Direction = Down

	if cfg.Handles[0].Direction != Up {
		t.Error("merged config aliases the caller's handle slice")
	}
}
