package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool
	UseConsoleWriter bool // human readable output instead of JSON lines
}

// LogFile implements a rolling file based logger.
type LogFile struct {
	Enabled bool
	Path    string

	InfoLog  string
	ErrorLog string

	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Log implements the logger config.
type Log struct {
	LogLevel     string // trace, debug, info, warn, error.
	ServiceName  string
	ReportCaller bool

	Console Console
	File    LogFile
}
