// Package logger wraps go-logging with a console backend and an optional file backend.
package logger

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
)

const (
	module     = "popcornhour"
	timeFormat = "2006/01/02 15:04:05"
)

var (
	logger  = logging.MustGetLogger(module)
	logFile *os.File
)

// InitLogger sets up the console backend at the given level. When filePath is not
// empty a second backend writes everything at DEBUG to that file.
func InitLogger(level logging.Level, filePath string) error {
	backends := make([]logging.Backend, 0, 2)

	console := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), newFormatter())
	leveled := logging.AddModuleLevel(console)
	leveled.SetLevel(level, module)
	backends = append(backends, leveled)

	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", filePath, err)
		}
		CloseLogger()
		logFile = file

		fileBackend := logging.AddModuleLevel(
			logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), newFormatter()))
		fileBackend.SetLevel(logging.DEBUG, module)
		backends = append(backends, fileBackend)
	}

	logger.SetBackend(logging.MultiLogger(backends...))
	return nil
}

// ParseLevel converts a level name such as "info" or "DEBUG", defaulting to INFO.
func ParseLevel(name string) logging.Level {
	level, err := logging.LogLevel(name)
	if err != nil {
		return logging.INFO
	}
	return level
}

func newFormatter() logging.Formatter {
	return logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level:.4s} - %{message}`)
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
