package log

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func New(ops ...Option) *Logger {
	defaults := []Option{
		WithWriter(os.Stderr),
		WithLevel(LevelInfo),
	}

	l := Logger{zerolog.New(nil).
		With().Timestamp().Logger(),
	}
	for _, op := range slices.Concat(defaults, ops) {
		op(&l)
	}
	return &l
}

// WithFields attaches key-value pairs to every message written by the logger.
func WithFields(fields ...any) Option {
	return func(l *Logger) {
		l.log = l.log.With().Fields(fields).Logger()
	}
}

func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.log = l.log.Level(zerolog.Level(level))
	}
}

// WithWriter directs output to w, formatting it for humans if w is a terminal.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			w = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
				cw.TimeFormat = time.DateTime
				cw.Out = f
			})
		}
		l.log = l.log.Output(w)
	}
}

type Option func(*Logger)

type Logger struct {
	log zerolog.Logger
}

func (l *Logger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Verbose(msg string, fields ...any) {
	l.log.Debug().Fields(fields).Msg(msg)
}
