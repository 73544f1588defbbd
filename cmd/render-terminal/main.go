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
	logger, err := logging.NewLogger(cfg.LogDir, "render-terminal")
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

	face, src, err := render.LoadFace(cfg.FontPath, render.TerminalFontSize)
	if err != nil {
		return err
	}
	defer face.Close()
	logger.Info("font_loaded", zap.String("source", src))

	written, err := render.RenderTerminalDir(face, cfg.TerminalDir, results, time.Now())
	for _, p := range written {
		logger.Info("image_saved", zap.String("path", p))
		fmt.Printf("Saved %s\n", p)
	}
	return err
}
