package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config represents the configs used by logger.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var global zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitGlobalLogger replaces the process-wide logger with one built from config.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if cfg.Pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		l = zerolog.New(os.Stdout)
	}

	global = l.Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyValues ...any) {
	emit(global.Debug(), msg, keyValues)
}

func Info(msg string, keyValues ...any) {
	emit(global.Info(), msg, keyValues)
}

func Warn(msg string, keyValues ...any) {
	emit(global.Warn(), msg, keyValues)
}

func Error(msg string, keyValues ...any) {
	emit(global.Error(), msg, keyValues)
}

func emit(e *zerolog.Event, msg string, keyValues []any) {
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyValues[i+1])
	}
	e.Msg(msg)
}
