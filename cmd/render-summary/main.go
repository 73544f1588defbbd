package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/apiprobe/internal/config"
	"github.com/hamed0406/apiprobe/internal/logging"
	"github.com/hamed0406/apiprobe/internal/render"
	"github.com/hamed0406/apiprobe/internal/repo/jsonfile"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir, "render-summary")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("render_failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	results, err := jsonfile.Read(cfg.ResultsPath)
	if err != nil {
		return err
	}

	face, src, err := render.LoadFace(cfg.FontPath, render.SummaryFontSize)
	if err != nil {
		return err
	}
	defer face.Close()
	logger.Info("font_loaded", zap.String("source", src))

	img := render.RenderSummary(face, results, time.Now())
	if err := render.SavePNG(cfg.SummaryImage, img); err != nil {
		return err
	}
	logger.Info("image_saved",
		zap.String("path", cfg.SummaryImage),
		zap.Int("rows", len(results)),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	fmt.Printf("Saved screenshot to %s\n", cfg.SummaryImage)
	return nil
}
