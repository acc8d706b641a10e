// Package app wires configuration into the content pipeline and site shell
// shared by the server and the static builder.
package app

import (
	"github.com/codeconfidence/internal/config"
	"github.com/codeconfidence/internal/content"
	"github.com/codeconfidence/internal/service"
	"github.com/codeconfidence/internal/view"
	"go.uber.org/zap"
)

// Stylesheets are linked from every page.
var Stylesheets = []string{"/static/css/site.css", "/highlight.css"}

// Components are the configured building blocks of the blog.
type Components struct {
	Config   config.AppConfig
	Logger   *zap.Logger
	Pipeline *content.Pipeline
	Loader   *content.Loader
	Shell    view.Shell
}

// New builds the components described by cfg.
func New(cfg config.AppConfig, logger *zap.Logger) *Components {
	if logger == nil {
		logger = zap.NewNop()
	}
	pipeline := content.NewPipeline(content.Options{
		HighlightStyle: cfg.HighlightStyle,
		LineNumbers:    cfg.HighlightLineNumbers,
		ExcerptLength:  cfg.ExcerptLength,
	})
	return &Components{
		Config:   cfg,
		Logger:   logger,
		Pipeline: pipeline,
		Loader:   content.NewLoader(pipeline, cfg.MediaURLPath, logger.Named("content")),
		Shell:    view.NewShell(SiteFromConfig(cfg)),
	}
}

// SiteFromConfig returns the shell metadata configured in cfg.
func SiteFromConfig(cfg config.AppConfig) view.Site {
	return view.Site{
		Title:       cfg.SiteTitle,
		Heading:     cfg.SiteHeading,
		Intro:       cfg.SiteIntro,
		Footer:      cfg.FooterText,
		Stylesheets: append([]string(nil), Stylesheets...),
		Links:       view.ParseSocialLinks(cfg.SocialLinks),
	}
}

// Renderer returns a view renderer over store.
func (c *Components) Renderer(store service.DocumentStore) *view.Renderer {
	return view.NewRenderer(store, c.Shell, c.Config.DateFormat)
}
