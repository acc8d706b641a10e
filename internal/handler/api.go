package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/codeconfidence/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Reloader re-runs the content pipeline and reports the new document count.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// StylesheetWriter writes the syntax-highlighting stylesheet.
type StylesheetWriter interface {
	WriteHighlightCSS(w io.Writer) error
}

// Options are the dependencies of the HTTP handlers.
type Options struct {
	Renderer       *view.Renderer
	Reloader       Reloader
	Stylesheet     StylesheetWriter
	Logger         *zap.Logger
	AdminTokenHash string
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	renderer   *view.Renderer
	reloader   Reloader
	stylesheet StylesheetWriter
	logger     *zap.Logger
	tokenHash  []byte

	cssOnce sync.Once
	css     []byte
	cssErr  error
}

// NewAPI constructs a handler set with shared services.
func NewAPI(opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var tokenHash []byte
	if opts.AdminTokenHash != "" {
		tokenHash = []byte(opts.AdminTokenHash)
	}
	return &API{
		renderer:   opts.Renderer,
		reloader:   opts.Reloader,
		stylesheet: opts.Stylesheet,
		logger:     logger,
		tokenHash:  tokenHash,
	}
}

// ReloadEnabled reports whether the admin reload route should be mounted.
func (a *API) ReloadEnabled() bool {
	return a.reloader != nil && len(a.tokenHash) > 0
}

func (a *API) renderHTML(c *gin.Context, status int, template string, page view.Page) {
	c.HTML(status, template, page)
}

// renderFailure 记录错误并渲染带站点外壳的 500 页面。
func (a *API) renderFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	a.logger.Error("render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	a.renderHTML(c, http.StatusInternalServerError, view.TemplateError, a.renderer.Failure("The page could not be rendered. Please try again later."))
}

func (a *API) highlightCSS() ([]byte, error) {
	a.cssOnce.Do(func() {
		var buf bytes.Buffer
		a.cssErr = a.stylesheet.WriteHighlightCSS(&buf)
		a.css = buf.Bytes()
	})
	return a.css, a.cssErr
}
