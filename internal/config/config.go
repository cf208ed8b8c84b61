package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// Config is the top-level webtime configuration.
type Config struct {
	ListenAddr string    `mapstructure:"listen_addr"`
	DataDir    string    `mapstructure:"data_dir"`
	Tracking   Tracking  `mapstructure:"tracking"`
	Focus      Focus     `mapstructure:"focus"`
	Retention  Retention `mapstructure:"retention"`
	Output     Output    `mapstructure:"output"`
}

// Tracking holds visit-tracking preferences.
type Tracking struct {
	Enabled bool `mapstructure:"enabled"`
}

// Focus holds focus-session defaults.
type Focus struct {
	DurationMinutes      int  `mapstructure:"duration_minutes"`
	BreakDurationMinutes int  `mapstructure:"break_duration_minutes"`
	AutoStartBreaks      bool `mapstructure:"auto_start_breaks"`
	AutoStartSessions    bool `mapstructure:"auto_start_sessions"`
}

// Retention holds data-retention windows.
type Retention struct {
	DataRetentionDays int `mapstructure:"data_retention_days"`
	AutoDeleteDays    int `mapstructure:"auto_delete_days"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("tracking.enabled", DefaultTracking.Enabled)
	v.SetDefault("focus.duration_minutes", DefaultFocus.DurationMinutes)
	v.SetDefault("focus.break_duration_minutes", DefaultFocus.BreakDurationMinutes)
	v.SetDefault("focus.auto_start_breaks", DefaultFocus.AutoStartBreaks)
	v.SetDefault("focus.auto_start_sessions", DefaultFocus.AutoStartSessions)
	v.SetDefault("retention.data_retention_days", DefaultRetention.DataRetentionDays)
	v.SetDefault("retention.auto_delete_days", DefaultRetention.AutoDeleteDays)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// Settings converts the configured defaults into a Settings record, used to
// seed the store on first run.
func (c *Config) Settings() tracker.Settings {
	return tracker.Settings{
		TrackingEnabled:      c.Tracking.Enabled,
		FocusDurationMinutes: c.Focus.DurationMinutes,
		BreakDurationMinutes: c.Focus.BreakDurationMinutes,
		AutoStartBreaks:      c.Focus.AutoStartBreaks,
		AutoStartSessions:    c.Focus.AutoStartSessions,
		DataRetentionDays:    c.Retention.DataRetentionDays,
		AutoDeleteDays:       c.Retention.AutoDeleteDays,
	}
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
