package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/codeconfidence/internal/app"
	"github.com/codeconfidence/internal/config"
	"github.com/codeconfidence/internal/logging"
	"github.com/codeconfidence/internal/service"
	"github.com/codeconfidence/internal/site"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	outDir := flag.String("out", cfg.OutputDir, "directory the site is written to")
	contentDir := flag.String("content", cfg.ContentDir, "directory holding markdown posts and media")
	flag.Parse()
	cfg.OutputDir = *outDir
	cfg.ContentDir = *contentDir

	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components := app.New(cfg, logger)
	docs, err := components.Loader.Load(cfg.ContentDir)
	if err != nil {
		logger.Fatal("failed to load content", zap.String("dir", cfg.ContentDir), zap.Error(err))
	}
	store, err := service.NewMemoryStore(docs)
	if err != nil {
		logger.Fatal("invalid content", zap.Error(err))
	}

	builder, err := site.NewBuilder(site.Options{
		Renderer:      components.Renderer(store),
		Stylesheet:    components.Pipeline,
		ContentDir:    cfg.ContentDir,
		MediaURLPath:  cfg.MediaURLPath,
		ImageMaxWidth: cfg.ImageMaxWidth,
		Logger:        logger.Named("site"),
	})
	if err != nil {
		logger.Fatal("failed to prepare builder", zap.Error(err))
	}

	if _, err := builder.Build(ctx, cfg.OutputDir); err != nil {
		logger.Fatal("build failed", zap.String("out", cfg.OutputDir), zap.Error(err))
	}
}
