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

	"github.com/codeconfidence/internal/app"
	"github.com/codeconfidence/internal/config"
	"github.com/codeconfidence/internal/db"
	"github.com/codeconfidence/internal/handler"
	"github.com/codeconfidence/internal/logging"
	"github.com/codeconfidence/internal/router"
	"github.com/codeconfidence/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components := app.New(cfg, logger)
	documents := service.NewDocumentService(db.DB)
	reloader := service.NewReloadService(components.Loader, documents, cfg.ContentDir, logger.Named("reload"))

	// 启动时加载内容；失败时继续提供数据库中已有的文章
	if _, err := reloader.Reload(ctx); err != nil {
		logger.Warn("serving previously stored documents", zap.Error(err))
	}

	api := handler.NewAPI(handler.Options{
		Renderer:       components.Renderer(documents),
		Reloader:       reloader,
		Stylesheet:     components.Pipeline,
		Logger:         logger.Named("http"),
		AdminTokenHash: cfg.AdminTokenHash,
	})

	// 设置并运行 Gin 服务器
	r, err := router.SetupRouter(router.Config{
		API:          api,
		Logger:       logger.Named("http"),
		MediaDir:     cfg.ContentDir,
		MediaURLPath: cfg.MediaURLPath,
	})
	if err != nil {
		logger.Fatal("failed to set up router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ListenAddr), zap.Bool("reload", api.ReloadEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
