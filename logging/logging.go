// Package logging wires zerolog into hepce.Logger: a console sink for
// interactive runs and a rotating file sink for unattended batch runs,
// the same dual-sink shape the teacher pack's logging setup uses.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	hepce "github.com/SyndemicsLab/hep-ce-go"
)

// Factory builds named hepce.Logger handles against a shared zerolog
// base logger, so every event's "logger name" becomes a zerolog field
// rather than a distinct sink.
type Factory struct {
	base zerolog.Logger
}

// NewFactory sets up the dual console/file sink under logDir and returns
// a Factory for constructing per-event Loggers.
func NewFactory(logDir string) (*Factory, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "hepce-sim.log"),
		MaxSize:    16,
		MaxBackups: 8,
		MaxAge:     90,
		Compress:   true,
	}

	base := zerolog.New(io.MultiWriter(console, file)).With().Timestamp().Logger()
	return &Factory{base: base}, nil
}

// Named returns the hepce.LoggerFactory form, tagging every message with
// the event name given at construction (spec §4.5).
func (f *Factory) Named() hepce.LoggerFactory {
	return func(name string) hepce.Logger {
		return &eventLogger{log: f.base.With().Str("event", name).Logger()}
	}
}

type eventLogger struct {
	log zerolog.Logger
}

func (l *eventLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *eventLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}
