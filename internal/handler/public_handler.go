package handler

import (
	"errors"
	"net/http"

	"github.com/codeconfidence/internal/db"
	"github.com/codeconfidence/internal/metrics"
	"github.com/codeconfidence/internal/view"
	"github.com/gin-gonic/gin"
)

// ShowHome renders the listing of every post, newest first.
func (a *API) ShowHome(c *gin.Context) {
	page, err := a.renderer.Listing()
	if err != nil {
		a.renderFailure(c, err)
		return
	}
	metrics.ObserveRender(metrics.ViewListing)
	a.renderHTML(c, http.StatusOK, view.TemplateListing, page)
}

// ShowPost renders the post whose slug equals the request path. It is mounted
// as the fallback route, so every unmatched path lands here.
func (a *API) ShowPost(c *gin.Context) {
	path := c.Request.URL.Path
	if !wantsHTML(c.Request.Method) {
		a.showNotFound(c, path)
		return
	}

	page, err := a.renderer.Detail(path)
	if errors.Is(err, view.ErrNotFound) {
		a.showNotFound(c, path)
		return
	}
	if err != nil {
		a.renderFailure(c, err)
		return
	}

	// 规范地址以斜杠结尾，与静态站点的目录结构一致
	if canonical := db.CanonicalSlug(path); canonical != path {
		c.Redirect(http.StatusMovedPermanently, canonical)
		return
	}

	metrics.ObserveRender(metrics.ViewDetail)
	a.renderHTML(c, http.StatusOK, view.TemplateDetail, page)
}

func (a *API) showNotFound(c *gin.Context, path string) {
	metrics.ObserveRender(metrics.ViewNotFound)
	a.renderHTML(c, http.StatusNotFound, view.TemplateNotFound, a.renderer.NotFound(path))
}

// HighlightCSS serves the stylesheet for highlighted code blocks.
func (a *API) HighlightCSS(c *gin.Context) {
	css, err := a.highlightCSS()
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", css)
}
