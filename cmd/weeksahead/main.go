package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/datekit/internal/cli"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.RunShift(cli.UnitWeeks, os.Args[1:], time.Now, os.Stdout); err != nil {
		log.Error().Msg(err.Error())
		fmt.Fprintln(os.Stderr, cli.ShiftUsage("weeksahead", cli.UnitWeeks))
		os.Exit(cli.ExitCode(err))
	}
}
