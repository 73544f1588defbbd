package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/apiprobe/internal/config"
	"github.com/hamed0406/apiprobe/internal/domain"
	"github.com/hamed0406/apiprobe/internal/logging"
	"github.com/hamed0406/apiprobe/internal/notify"
	"github.com/hamed0406/apiprobe/internal/probe"
	"github.com/hamed0406/apiprobe/internal/repo"
	"github.com/hamed0406/apiprobe/internal/repo/jsonfile"
	"github.com/hamed0406/apiprobe/internal/repo/memory"
	"github.com/hamed0406/apiprobe/internal/sweep"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Print(err)
		return 1
	}
	logger, err := logging.NewLogger(cfg.LogDir, "measure")
	if err != nil {
		log.Print(err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return measure(ctx, cfg, logger, memory.New())
}

// measure runs one sweep into store and writes whatever it gathered.
func measure(ctx context.Context, cfg config.Config, logger *zap.Logger, store repo.ResultStore) int {
	sw := sweep.New(logger, probe.NewHTTPProber(cfg.BaseURL, cfg.HTTPTimeout), store, sweep.Plan{
		BaseURL:     cfg.BaseURL,
		UserWA:      cfg.UserWA,
		Password:    cfg.Password,
		SampleDate:  cfg.SampleDate,
		SampleStart: cfg.SampleStart,
		SampleEnd:   cfg.SampleEnd,
	})

	logger.Info("sweep_start", zap.String("base_url", cfg.BaseURL), zap.Duration("timeout", cfg.HTTPTimeout))
	runErr := sw.Run(ctx)

	// Partial results are written even when the run stopped early.
	results, err := store.List(context.Background())
	if err != nil {
		logger.Error("results_list_error", zap.Error(err))
		return 1
	}
	if err := jsonfile.Write(cfg.ResultsPath, results); err != nil {
		logger.Error("results_write_error", zap.String("path", cfg.ResultsPath), zap.Error(err))
		return 1
	}
	logger.Info("results_saved", zap.Int("count", len(results)), zap.String("path", cfg.ResultsPath))

	if runErr != nil {
		logger.Error("sweep_failed", zap.Error(runErr))
		return 1
	}

	sum := domain.Summarize(results)
	logger.Info("sweep_summary",
		zap.Int("total", sum.Total),
		zap.Int("failed", sum.Failed),
		zap.Int("fallbacks", sum.Fallbacks),
	)
	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		title, text := notify.RunMessage(cfg.BaseURL, sum)
		if err := (notify.Multi{slack}).Send(ctx, title, text); err != nil {
			logger.Warn("notify_error", zap.Error(err))
		}
	}

	fmt.Printf("Saved results for %d endpoints to %s\n", len(results), cfg.ResultsPath)
	return 0
}
