// Package config reads passhash settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/git2026/programacao-web/hashing"
	"github.com/git2026/programacao-web/pwhash"
)

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// Load copies variables from the given .env files into the environment.
// Missing files are skipped and variables already set are never overridden.
// With no arguments it reads ".env" in the working directory.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PASSHASH_LOG_LEVEL")
	if logLevel == "" {
		return Warn
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PASSHASH_DEBUG") == "true"
}

// GetRounds returns the work factor for new sha512i credentials.
func GetRounds() (uint32, error) {
	v := os.Getenv("PASSHASH_ROUNDS")
	if v == "" {
		return pwhash.Rounds, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("config: PASSHASH_ROUNDS must be a positive 32-bit integer, got %q", v)
	}
	return uint32(n), nil
}

// GetSaltLen returns the length of salts generated for new credentials.
func GetSaltLen() (uint32, error) {
	v := os.Getenv("PASSHASH_SALT_LEN")
	if v == "" {
		return hashing.DefaultSHA512SaltLen, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("config: PASSHASH_SALT_LEN must be a 32-bit integer, got %q", v)
	}
	return uint32(n), nil
}

func GetDriver() hashing.DriverName {
	driver := os.Getenv("PASSHASH_DRIVER")
	if driver == "" {
		return hashing.DriverSHA512
	}
	return hashing.DriverName(driver)
}

// GetPassword returns the password supplied through the environment, which
// keeps it out of the process argument list.
func GetPassword() string {
	return os.Getenv("PASSHASH_PASSWORD")
}
