package logging

import (
	"io"
	"strings"

	"chime/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Configure sets up logrus per settings. The hook's contract with its host
// is exit codes on clean standard streams, so log output only ever goes to
// the rotating file, and only when logging is enabled.
func Configure(settings *config.Settings) *logrus.Logger {
	logger := logrus.New()
	if !settings.Logging.Enabled || settings.Logging.Path == "" {
		logger.SetOutput(io.Discard)
		return logger
	}
	switch strings.ToLower(settings.Logging.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if lvl, err := logrus.ParseLevel(strings.ToLower(settings.Logging.Level)); err == nil {
		logger.SetLevel(lvl)
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   settings.Logging.Path,
		MaxSize:    20, // megabytes
		MaxBackups: 3,
		MaxAge:     30,
	})
	return logger
}

// NewTestLogger returns a silent logger for tests.
func NewTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
