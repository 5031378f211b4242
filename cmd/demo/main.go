package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/chaintable/internal/config"
	"github.com/skybi/chaintable/internal/counter"
	"github.com/skybi/chaintable/internal/hashtable"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Fill a plain table with some roman numerals and read them back
	table := hashtable.New[string, int](cfg.BucketCount)
	for key, value := range map[string]int{"I": 1, "V": 5, "X": 10, "L": 50, "C": 100} {
		table.Set(key, value)
	}
	log.Info().Int("entries", table.Length()).Msg("filled the table")
	for key, value := range table.Iterate() {
		log.Debug().Str("key", key).Int("value", value).Msg("stored entry")
	}

	value, err := table.Get("V")
	if err != nil {
		log.Fatal().Err(err).Msg("could not look up 'V'")
	}
	log.Info().Int("value", value).Msg("looked up 'V'")

	if err := table.Delete("V"); err != nil {
		log.Fatal().Err(err).Msg("could not delete 'V'")
	}
	if _, err := table.Get("V"); err != nil {
		var notFound *hashtable.KeyNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("unexpected lookup error")
		}
		log.Info().Str("key", fmt.Sprintf("%v", notFound.Key)).Msg("'V' is gone again")
	}

	// Track some hits per client using the table-backed counter
	hits := counter.New[uuid.UUID]()
	clients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, client := range clients {
		hits.Add(client, int64(i+1))
	}
	for client, total := range hits.Drain() {
		log.Info().Str("client", client.String()).Int64("hits", total).Msg("drained hit total")
	}

	// Keep some short-lived values around and sweep them in the background
	recent := hashtable.NewExpiring[string, int](cfg.BucketCount, cfg.ValueLifetime)
	recent.ScheduleCleanupTask(cfg.ValueLifetime / 2)
	defer recent.StopCleanupTask()
	recent.Set("answer", 42)
	log.Info().Int("entries", recent.Length()).Dur("lifetime", cfg.ValueLifetime).Msg("filled the expiring table")

	log.Info().Msg("done!")
}
