package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/apiprobe/internal/config"
	"github.com/hamed0406/apiprobe/internal/httpapi"
	"github.com/hamed0406/apiprobe/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir, "gallery")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := httpapi.NewServer(logger, cfg.ResultsPath, cfg.SummaryImage, cfg.TerminalDir)
	srv := &http.Server{
		Addr:              cfg.GalleryAddr,
		Handler:           api.Router(cfg.GalleryKeys),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("gallery_listen", zap.String("addr", cfg.GalleryAddr), zap.Bool("keys_required", len(cfg.GalleryKeys) > 0))
	if err := serve(ctx, srv, logger); err != nil {
		logger.Error("gallery_stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("gallery_stopped")
}

// serve runs srv until it fails or ctx is done, then shuts it down.
func serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown_signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serverErr
}
