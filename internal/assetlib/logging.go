package assetlib

import (
	"fmt"
	"io"
	"os"

	"github.com/assetctl/cli/internal/assetlib/config"
	"github.com/rs/zerolog"
)

/*
NewLogger
Build the session logger: a console sink on stderr plus, when the
configuration names one, the log file. If the file cannot be opened the
logger degrades to console only. The configured verbosity (0-4) maps to
error/warn/info/debug/trace; out-of-range values clamp.
*/
func NewLogger(cfg *config.RootConfig) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr}

	var writer io.Writer = console
	if cfg.LogFile != "" {
		file, err := os.OpenFile(
			cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr,
				"could not open log file '%s': %s\n", cfg.LogFile, err)
		} else {
			writer = zerolog.MultiLevelWriter(console, file)
		}
	}

	return zerolog.New(writer).
		Level(logLevel(cfg.LogLevel)).
		With().Timestamp().
		Logger()
}

func logLevel(level int) zerolog.Level {
	switch {
	case level <= 0:
		return zerolog.ErrorLevel
	case level == 1:
		return zerolog.WarnLevel
	case level == 2:
		return zerolog.InfoLevel
	case level == 3:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
