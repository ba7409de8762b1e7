package cli

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is the level of the loggers created by NewLogger.
var LogLevel = new(slog.LevelVar)

func addLogLevelFlag(flags *flag.FlagSet) {
	if flags.Lookup("log-level") != nil {
		return
	}

	flags.Var(logLevelFlag("INFO"), "log-level", "set the log level (DEBUG, INFO, WARN, ERROR)")
}

type logLevelFlag string

func (logLevelFlag) Set(s string) error {
	level, err := parseLogLevel(s)
	if err != nil {
		return err
	}

	LogLevel.Set(level)
	slog.SetLogLoggerLevel(level)

	return nil
}

func (f logLevelFlag) String() string {
	return string(f)
}

func (f logLevelFlag) Type() string {
	return "LEVEL"
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q provided. supported log levels are DEBUG, INFO, WARN, ERROR", s)
	}
}
