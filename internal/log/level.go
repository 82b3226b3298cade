package log

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"
)

// Level determines severity of log messages.
type Level zerolog.Level

const (
	// LevelSilent disables logging.
	LevelSilent = Level(zerolog.Disabled)

	// LevelFatal reports only errors that terminate the program.
	LevelFatal = Level(zerolog.FatalLevel)

	// LevelError also reports failures the program can recover from.
	LevelError = Level(zerolog.ErrorLevel)

	// LevelInfo also reports progress of the program.
	LevelInfo = Level(zerolog.InfoLevel)

	// LevelVerbose records every message.
	LevelVerbose = Level(zerolog.DebugLevel)
)

var errUnknownLevel = errors.New("unknown log level")

func (l Level) String() string {
	text, err := l.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case LevelSilent:
		return []byte("silent"), nil
	case LevelVerbose:
		return []byte("verbose"), nil
	case LevelFatal, LevelError, LevelInfo:
		return []byte(zerolog.Level(l).String()), nil
	}
	return nil, errUnknownLevel
}

func (l *Level) UnmarshalText(text []byte) error {
	switch name := string(bytes.ToLower(text)); name {
	case "silent":
		*l = LevelSilent
	case "verbose":
		*l = LevelVerbose
	case "fatal", "error", "info":
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return err
		}
		*l = Level(level)
	default:
		return errUnknownLevel
	}
	return nil
}
