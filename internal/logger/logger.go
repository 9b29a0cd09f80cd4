// Package logger builds the diagnostics logger: human-readable on stderr, optionally JSON into a rotated file
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Verbose bool   // debug-уровень вместо warn
	File    string // путь к файлу логов, пусто - только консоль

	MaxSize    int // Max size in megabytes
	MaxBackups int // Max number of backups
	MaxAge     int // Max age in days
	Compress   bool
}

func DefaultOptions() Options {
	return Options{
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns the logger and a closer for the file sink (a no-op when opts.File is empty).
func New(console io.Writer, opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339, NoColor: true}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nil, err
		}
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}
		w = zerolog.MultiLevelWriter(w, file)
		closer = file
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer, nil
}
