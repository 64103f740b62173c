// Package logger provides leveled logging for the passhash command.
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const module = "passhash"

var logger *logging.Logger

func init() {
	InitLogger(os.Stderr, logging.WARNING)
}

// InitLogger routes log output to w, dropping records below level.
func InitLogger(w io.Writer, level logging.Level) {
	newLogger := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{level} - %{message}`))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, module)

	newLogger.SetBackend(leveled)
	logger = newLogger
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
