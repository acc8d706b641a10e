package handler

import (
	"errors"
	"net/http"

	"github.com/codeconfidence/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListPosts returns the listing cards as JSON.
func (a *API) ListPosts(c *gin.Context) {
	cards, err := a.renderer.Cards()
	if err != nil {
		a.logger.Error("list posts", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": cards, "total": len(cards)})
}

// GetPost returns a single post by slug as JSON.
func (a *API) GetPost(c *gin.Context) {
	detail, err := a.renderer.DetailPage(c.Param("slug"))
	if errors.Is(err, view.ErrNotFound) {
		respondError(c, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		a.logger.Error("get post", zap.String("slug", c.Param("slug")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, detail)
}
