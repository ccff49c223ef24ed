// Package config provides configuration management for tilepane with Viper integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/tilepane/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for tilepane.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Layout     LayoutConfig     `mapstructure:"layout" toml:"layout" json:"layout"`
	Script     ScriptConfig     `mapstructure:"script" toml:"script" json:"script"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// LayoutConfig holds the sizing given to panes created by split and insert.
type LayoutConfig struct {
	DefaultSize float64 `mapstructure:"default_size" toml:"default_size" json:"default_size" jsonschema:"exclusiveMinimum=0"`
	DefaultUnit string  `mapstructure:"default_unit" toml:"default_unit" json:"default_unit" jsonschema:"enum=weight,enum=exact"`
}

// ScriptConfig holds layout script runner behavior.
type ScriptConfig struct {
	// StopOnError aborts a script at the first failing line.
	StopOnError bool `mapstructure:"stop_on_error" toml:"stop_on_error" json:"stop_on_error"`
	// Trace prints every pane event emitted while the script runs.
	Trace bool `mapstructure:"trace" toml:"trace" json:"trace"`
}

// AppearanceConfig holds CLI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors used by the CLI renderer.
type ColorPalette struct {
	Text    string `mapstructure:"text" toml:"text" json:"text"`
	Muted   string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent  string `mapstructure:"accent" toml:"accent" json:"accent"`
	Error   string `mapstructure:"error" toml:"error" json:"error"`
	Success string `mapstructure:"success" toml:"success" json:"success"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	configDir string
}

// WithConfigDir overrides the XDG config directory lookup.
func WithConfigDir(dir string) ManagerOption {
	return func(o *managerOptions) {
		o.configDir = dir
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir := o.configDir
	if configDir == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		configDir = dir
	}
	v.AddConfigPath(configDir)

	// Set up environment variable support
	v.SetEnvPrefix("TILEPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "TILEPANE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILEPANE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TILEPANE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TILEPANE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w\nCheck the file format (must be valid TOML) and permissions", err)
		}
	}

	return m.reload()
}

// reload unmarshals and validates the current viper state. Must be called with lock.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.viper.ConfigFileUsed(), err)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.viper.ReadInConfig(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to re-read config")
			return
		}
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// ConfigFileUsed returns the path of the file read by Load, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("layout.default_size", defaults.Layout.DefaultSize)
	m.viper.SetDefault("layout.default_unit", defaults.Layout.DefaultUnit)

	m.viper.SetDefault("script.stop_on_error", defaults.Script.StopOnError)
	m.viper.SetDefault("script.trace", defaults.Script.Trace)

	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.error", defaults.Appearance.Palette.Error)
	m.viper.SetDefault("appearance.palette.success", defaults.Appearance.Palette.Success)
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Layout.DefaultUnit = strings.ToLower(strings.TrimSpace(config.Layout.DefaultUnit))
}
