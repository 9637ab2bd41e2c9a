package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/adiyatma/coin-tracker-be/internal/services"
)

// Updater refreshes the coin catalog on a cron schedule.
type Updater struct {
	fetcher  *Fetcher
	coinSvc  services.CoinServiceProvider
	schedule cron.Schedule
	nextRun  time.Time
	ticker   *time.Ticker
	done     chan bool
}

// NewUpdater creates an Updater running on the given cron expression
// (standard five-field syntax or a descriptor like "@hourly").
func NewUpdater(fetcher *Fetcher, coinSvc services.CoinServiceProvider, scheduleExpr string) (*Updater, error) {
	schedule, err := cron.ParseStandard(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", scheduleExpr, err)
	}
	return &Updater{
		fetcher:  fetcher,
		coinSvc:  coinSvc,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the refresh loop. It refreshes once immediately so the catalog
// is populated on a fresh database, then follows the schedule.
func (u *Updater) Run() {
	log.Info().Msg("Starting catalog refresh job...")
	u.ticker = time.NewTicker(1 * time.Minute)
	defer u.ticker.Stop()

	if err := u.Refresh(context.Background()); err != nil {
		log.Error().Err(err).Msg("Initial catalog refresh failed")
	}
	u.nextRun = u.schedule.Next(time.Now())

	for {
		select {
		case <-u.done:
			log.Info().Msg("Stopping catalog refresh job.")
			return
		case <-u.ticker.C:
			now := time.Now()
			if now.After(u.nextRun) {
				if err := u.Refresh(context.Background()); err != nil {
					log.Error().Err(err).Msg("Scheduled catalog refresh failed")
				}
				u.nextRun = u.schedule.Next(now)
			}
		}
	}
}

// Stop halts the refresh loop.
func (u *Updater) Stop() {
	u.done <- true
}

// Refresh fetches the upstream snapshot and swaps the catalog. On upstream
// failure the previously loaded catalog stays as-is.
func (u *Updater) Refresh(ctx context.Context) error {
	coins, err := u.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}

	count, err := u.coinSvc.ReplaceAll(coins)
	if err != nil {
		return err
	}
	log.Info().Int("coins", count).Msg("Catalog refreshed")
	return nil
}
