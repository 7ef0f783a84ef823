package main

import (
	"context"
	"database/sql"
	"errors"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_booking/internal/adapters/content"
	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("base", cfg.ContentBase).
		Int("workers", cfg.Workers).
		Int("properties", len(cfg.PropertyIDs)).
		Msg("ingestor starting")

	if len(cfg.PropertyIDs) == 0 {
		log.Warn().Msg("INGEST_PROPERTY_IDS is empty, nothing to do")
		return
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := content.New(cfg.ContentBase, cfg.ContentKey, cfg.ContentRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}
	ing := app.NewIngestionService(client, repo)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var ok, skipped, failed atomic.Int64

	for _, id := range cfg.PropertyIDs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Warn().Err(err).Msg("ingestion interrupted")
			break
		}

		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)

			err := ing.IngestHotel(ctx, hotelID)
			switch {
			case err == nil:
				ok.Add(1)
				log.Info().Int64("id", hotelID).Msg("ingest ok")
			case errors.Is(err, app.ErrSkipped):
				skipped.Add(1)
				log.Info().Int64("id", hotelID).Err(err).Msg("ingest skipped")
			default:
				failed.Add(1)
				log.Warn().Int64("id", hotelID).Err(err).Msg("ingest failed")
			}
		}(id)
	}

	wg.Wait()
	log.Info().
		Int64("ok", ok.Load()).
		Int64("skipped", skipped.Load()).
		Int64("failed", failed.Load()).
		Msg("ingestion completed")
}
