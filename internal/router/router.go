package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/codeconfidence/internal/content"
	"github.com/codeconfidence/internal/handler"
	"github.com/codeconfidence/internal/logging"
	"github.com/codeconfidence/internal/metrics"
	"github.com/codeconfidence/internal/view"
	"github.com/codeconfidence/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Config holds what the router needs besides the handlers.
type Config struct {
	API          *handler.API
	Logger       *zap.Logger
	MediaDir     string
	MediaURLPath string
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg Config) (*gin.Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.Middleware(logger), logging.Recovery(logger))

	tmpl, err := view.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// 静态文件服务
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	if cfg.MediaDir != "" {
		mediaURLPath := "/" + strings.Trim(cfg.MediaURLPath, "/")
		if mediaURLPath == "/" {
			mediaURLPath = "/media"
		}
		media := r.Group(mediaURLPath, denySources)
		media.Static("/", cfg.MediaDir)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := cfg.API
	r.GET("/", api.ShowHome)
	r.GET("/highlight.css", api.HighlightCSS)

	posts := r.Group("/api/posts")
	{
		posts.GET("", api.ListPosts)
		posts.GET("/*slug", api.GetPost)
	}

	if api.ReloadEnabled() {
		admin := r.Group("/admin", api.AuthRequired())
		admin.POST("/reload", api.ReloadContent)
	}

	// 其余路径按文章 slug 解析
	r.NoRoute(api.ShowPost)

	return r, nil
}

// denySources hides markdown sources and anything under a dot or underscore
// entry, matching what the loader and the static build skip.
func denySources(c *gin.Context) {
	cleaned := strings.Trim(path.Clean("/"+c.Param("filepath")), "/")
	segments := strings.Split(cleaned, "/")
	for _, segment := range segments {
		if strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, "_") {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
	}
	if content.IsMarkdown(segments[len(segments)-1]) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Next()
}
