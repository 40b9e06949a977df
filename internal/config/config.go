package config

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rlapin92/ngext-resizable/internal/config/layer"
	"github.com/rlapin92/ngext-resizable/internal/config/loader"
)

// Layer names.
const (
	LayerDefaults    = "defaults"
	LayerFile        = "file"
	LayerEnvironment = "environment"
)

// Config provides unified access to the layered configuration.
type Config struct {
	mu sync.RWMutex

	// Defaults, file and environment layers
	layers *layer.Stack

	fs        loader.FileSystem
	path      string
	envPrefix string
	useEnv    bool
	loaded    bool

	// configErrors stores errors encountered during configuration access.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the configuration file. The format is chosen by extension.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFileSystem sets the file system used to read the config file.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnv enables or disables the environment layer.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// New creates a new Config instance with the given options.
func New(opts ...Option) *Config {
	c := &Config{
		layers:    layer.NewStack(),
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		useEnv:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load loads configuration from all sources. A missing config file is not
// an error; an unreadable or malformed one is.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.layers.Put(layer.New(LayerDefaults, layer.SourceBuiltin, defaultConfig()))

	if c.path != "" {
		data, err := c.readFile()
		if err != nil {
			return err
		}
		l := layer.New(LayerFile, layer.SourceFile, data)
		l.Path = c.path
		c.layers.Put(l)
	}

	if c.useEnv {
		data, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
		if len(data) > 0 {
			c.layers.Put(layer.New(LayerEnvironment, layer.SourceEnv, data))
		}
	}

	c.loaded = true
	c.configErrors = nil
	return nil
}

// Reload re-reads the config file and returns the setting paths whose
// effective value changed. On error the previous file layer is kept.
func (c *Config) Reload() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return nil, ErrNotLoaded
	}
	if c.path == "" {
		return nil, nil
	}

	data, err := c.readFile()
	if err != nil {
		return nil, err
	}

	before := c.layers.Merged()
	if err := c.layers.Replace(LayerFile, data); err != nil {
		return nil, err
	}
	after := c.layers.Merged()

	changed := layer.Diff(before, after)

	c.configErrors = nil
	return changed, nil
}

func (c *Config) readFile() (map[string]any, error) {
	fl, err := loader.ForPath(c.fs, c.path)
	if err != nil {
		return nil, err
	}
	data, err := fl.Load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// Path returns the config file path, or "" when none is configured.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return layer.Lookup(c.layers.Merged(), path)
}

// Origin returns the name of the layer that supplies the value at path.
func (c *Config) Origin(path string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layers.Origin(path)
}

// Merged returns the fully merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.layers.Merged()
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	n, ok := toInt(v)
	if !ok {
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
	return n, nil
}

// GetBool returns a boolean value at the given path. Strings accepted by
// strconv.ParseBool are converted.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b, nil
		}
	}
	if n, ok := toInt(v); ok && (n == 0 || n == 1) {
		return n == 1, nil
	}
	return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case uint64:
		return int(val), true
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"resize": map[string]any{
			"min_size": map[string]any{
				"width":  0,
				"height": 0,
			},
			"border": map[string]any{
				"enabled":            true,
				"edge_offset":        DefaultEdgeOffset,
				"allowed_directions": "all",
			},
			"handles": []any{},
		},
		"scene": map[string]any{
			"left":   DefaultSceneLeft,
			"top":    DefaultSceneTop,
			"width":  DefaultSceneWidth,
			"height": DefaultSceneHeight,
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// recordConfigError stores a configuration problem for later retrieval.
// Only the first error for each path is kept.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns configuration errors encountered during access.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}

// ClearConfigErrors clears any stored configuration errors.
func (c *Config) ClearConfigErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configErrors = nil
}
