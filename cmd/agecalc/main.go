package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/datekit/internal/cli"
	"github.com/dafibh/datekit/internal/service"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// The prompt loop re-asks on invalid input; it only fails when stdin
	// closes or errors.
	birth, err := cli.PromptBirthDate(os.Stdin, os.Stdout, time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("No valid birth date received")
	}

	age, err := service.NewAgeService(time.Now).Age(birth)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compute age")
	}

	fmt.Println(age.Sentence())
}
