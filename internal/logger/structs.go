package logger

// Console implements a console based logger.
type Console struct {
	Enabled bool `toml:"enabled" json:"enabled"`

	// UseConsoleWriter switches from JSON lines to zerolog's human readable
	// console format.
	UseConsoleWriter bool `toml:"pretty" json:"pretty"`
}

// LogFile implements a file based logger with rotation.
type LogFile struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`

	MaxSize    int `toml:"maxSize" json:"maxSize"` // megabytes
	MaxBackups int `toml:"maxBackups" json:"maxBackups"`
	MaxAge     int `toml:"maxAge" json:"maxAge"` // days
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"level" json:"level"` // trace, debug, info, warn, error

	ReportCaller bool `toml:"reportCaller" json:"reportCaller"`

	// Console used for normal interactive runs.
	Console Console `toml:"console" json:"console"`

	// File used when a persistent log of a long generation is wanted.
	File LogFile `toml:"file" json:"file"`
}

// DefaultLog returns the logger config for plain CLI use: readable console
// output at info level, no file.
func DefaultLog() Log {
	return Log{
		LogLevel: "info",
		Console: Console{
			Enabled:          true,
			UseConsoleWriter: true,
		},
	}
}
