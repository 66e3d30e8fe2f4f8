package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/simp-lee/logger"
)

// SetupLogger builds a *logger.Logger from the log section, installs it as
// the slog default, and returns it. The caller owns Close(). Level and
// format values that survived Validate are exact; anything else falls back
// (unknown level to info, unknown format to the library's custom format).
func SetupLogger(cfg *LogConfig) (*logger.Logger, error) {
	if cfg == nil {
		return nil, errors.New("log config is nil")
	}

	log, err := logger.New(loggerOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	log.SetDefault()
	return log, nil
}

// loggerOptions translates a LogConfig into library options. File output
// and rotation options are only emitted when a file path is set.
func loggerOptions(cfg *LogConfig) []logger.Option {
	format := parseFormat(cfg.Format)

	// Color defaults on; the config flag is a pointer so absence and an
	// explicit false stay distinguishable.
	color := cfg.Color == nil || *cfg.Color

	opts := []logger.Option{
		logger.WithLevel(parseLevel(cfg.Level)),
		logger.WithMiddleware(logger.ContextMiddleware()),
		logger.WithConsoleFormat(format),
		logger.WithConsoleColor(color),
	}

	if cfg.FilePath == "" {
		return opts
	}

	opts = append(opts,
		logger.WithFilePath(cfg.FilePath),
		logger.WithFileFormat(format),
	)
	if cfg.MaxSizeMB > 0 {
		opts = append(opts, logger.WithMaxSizeMB(cfg.MaxSizeMB))
	}
	if cfg.RetentionDays > 0 {
		opts = append(opts, logger.WithRetentionDays(cfg.RetentionDays))
	}
	if cfg.MaxBackups > 0 {
		opts = append(opts, logger.WithMaxBackups(cfg.MaxBackups))
	}
	if cfg.CompressRotated != nil {
		opts = append(opts, logger.WithCompressRotated(*cfg.CompressRotated))
	}
	return opts
}

func parseFormat(s string) logger.OutputFormat {
	switch strings.ToLower(s) {
	case "text":
		return logger.FormatText
	case "json":
		return logger.FormatJSON
	default:
		return logger.FormatCustom
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
