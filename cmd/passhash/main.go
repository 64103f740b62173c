// Command passhash hashes and verifies password credentials from the shell.
//
//	passhash hash --salt abcd --raw < password
//	passhash hash --password-stdin
//	passhash verify --hash '$sha512i$r=10000$...' --password-stdin
//	passhash info --hash '$wasm$...'
//
// Settings come from PASSHASH_* environment variables, optionally seeded from
// a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/git2026/programacao-web/config"
	"github.com/git2026/programacao-web/logger"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(os.Stderr, logging.DEBUG)
	case config.Info:
		logger.InitLogger(os.Stderr, logging.INFO)
	case config.Notice:
		logger.InitLogger(os.Stderr, logging.NOTICE)
	case config.Warn:
		logger.InitLogger(os.Stderr, logging.WARNING)
	case config.Error:
		logger.InitLogger(os.Stderr, logging.ERROR)
	default:
		fmt.Fprintln(os.Stderr, "unknown log level:", config.GetLogLevel())
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errMismatch) {
			logger.Error(err)
		}
		os.Exit(1)
	}
}
