// Command seasonal forecasts the next seasonal cycle of a series read from a
// CSV or Excel file.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := newRootCmd(log.Logger).Execute(); err != nil {
		log.Error().Err(err).Msg("seasonal failed")
		os.Exit(1)
	}
}
