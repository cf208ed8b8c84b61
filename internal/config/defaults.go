// Package config provides configuration loading and defaults for webtime.
package config

// DefaultListenAddr is the default bind address for the HTTP API.
const DefaultListenAddr = "127.0.0.1:8090"

// DefaultConfigDir is the default location for webtime configuration.
const DefaultConfigDir = "~/.config/webtime"

// DefaultDataDir is the default location for the webtime database.
const DefaultDataDir = "~/.config/webtime"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "webtime.db"

// DefaultTracking holds the default tracking preferences.
var DefaultTracking = Tracking{
	Enabled: true,
}

// DefaultFocus holds the default focus-session settings.
var DefaultFocus = Focus{
	DurationMinutes:      25,
	BreakDurationMinutes: 5,
}

// DefaultRetention holds the default data-retention windows.
var DefaultRetention = Retention{
	DataRetentionDays: 90,
	AutoDeleteDays:    365,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
