package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogging installs a console-writer package logger, the pattern
// EasyRobot's pkg/logger/logger.go uses: caller info attached, human-
// readable output for a CLI tool rather than the default JSON sink.
func initLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Caller().Logger()
}
