package main

import (
	"context"
	"time"

	"soupheatmap/internal/config"
	"soupheatmap/internal/logging"
	"soupheatmap/internal/vct"

	"github.com/rs/zerolog"
)

// App struct
type App struct {
	ctx       context.Context
	log       zerolog.Logger
	loader    *vct.Loader
	batchSize int
}

// NewApp creates a new App application struct
func NewApp() *App {
	if err := config.Load("."); err != nil {
		// Bad config file: run on defaults rather than refusing to start.
		bootLog := logging.New("info")
		bootLog.Warn().Err(err).Msg("config file unreadable, using defaults")
	}

	log := logging.New(config.GetString("logLevel"))

	loader := vct.NewLoader(log.With().Str("component", "loader").Logger())
	loader.SetBatchDelay(time.Duration(config.GetInt("batch.delayMillis")) * time.Millisecond)

	batchSize := config.GetInt("batch.size")
	if batchSize <= 0 {
		batchSize = vct.DefaultBatchSize
	}

	return &App{
		log:       log,
		loader:    loader,
		batchSize: batchSize,
	}
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.log.Info().Int("batchSize", a.batchSize).Msg("SoupHeatMap started")
}
