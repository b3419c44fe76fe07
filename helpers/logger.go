package helpers

import (
	"fmt"
	"log/slog"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

var defaultRedactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken"}

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
	// RedactedKeys are extra key patterns whose values never reach the log.
	RedactedKeys []string `yaml:"redacted_keys" json:"redacted_keys"`
}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logLevel, err := ParseLogLevel(conf.Level)
	if err != nil {
		handleError("failed to initialize logger", err)
	}

	logger := lager.NewLogger(name)

	if conf.PlainTextSink {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(logLevel)}))
		logger.RegisterSink(lager.NewSlogSink(slogger))
	} else {
		keyPatterns := append(append([]string{}, defaultRedactedKeyPatterns...), conf.RedactedKeys...)
		sink, err := NewRedactingSink(os.Stdout, logLevel, keyPatterns, nil)
		if err != nil {
			handleError("failed to create redacted sink", err)
		}
		logger.RegisterSink(sink)
	}

	return logger
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func slogLevel(level lager.LogLevel) slog.Level {
	switch level {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.INFO:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

func handleError(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}
