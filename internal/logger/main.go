// Package logger implements the wordgen logger on top of zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter implements a struct to split logs by level.
// See func WriteLevel about the separation.
type LevelWriter struct {
	io.Writer
	OutWriter io.Writer // debug and info
	ErrWriter io.Writer // warn and up
}

// WriteLevel routes the log line to the target output depending on the level.
// Human readable progress stays on stdout, diagnostics go to stderr.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	// disabled logging
	if l == zerolog.Disabled {
		return 0, nil
	}

	if l >= zerolog.WarnLevel {
		return lw.ErrWriter.Write(p) //nolint:wrapcheck
	}

	return lw.OutWriter.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables the console writer, the rolling file
// writer, both, or neither (a fully silent logger).
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	// add the enabled only loggers
	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fileWriter, ferr := newRollingFile(cfg)
		if ferr != nil {
			return ferr
		}

		writers = append(writers, fileWriter)
	}

	mw := zerolog.MultiLevelWriter(writers...)

	// decide what zero log should show
	switch {
	case cfg.ReportCaller && stack:
		log.Logger = zerolog.New(mw).With().Timestamp().Stack().Logger()
	case cfg.ReportCaller:
		log.Logger = zerolog.New(mw).With().Timestamp().Caller().Logger()
	default:
		log.Logger = zerolog.New(mw).With().Timestamp().Logger()
	}

	return nil
}

// newRollingFile uses lumberjack to create a size-rotated log file.
func newRollingFile(cfg Log) (io.Writer, error) {
	if dir := filepath.Dir(cfg.File.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
			return nil, errors.Wrap(err, "can't create log directory")
		}
	}

	return &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSize,
		MaxAge:     cfg.File.MaxAge,
		MaxBackups: cfg.File.MaxBackups,
		LocalTime:  false,
		Compress:   false,
	}, nil
}

// NewConsoleWriter creates a level-splitting console writer.
func NewConsoleWriter(cfg Log) io.Writer {
	var lw LevelWriter

	lw.OutWriter = os.Stdout
	lw.ErrWriter = os.Stderr

	if cfg.Console.UseConsoleWriter {
		lw.OutWriter = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			NoColor:    false,
			TimeFormat: zerolog.TimeFieldFormat,
		}

		lw.ErrWriter = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return &lw
}
