package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthRequired 校验 Bearer 令牌与配置的 bcrypt 哈希是否匹配。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.Request)
		if token == "" || len(a.tokenHash) == 0 {
			respondError(c, http.StatusUnauthorized, "missing or invalid token")
			c.Abort()
			return
		}
		if err := bcrypt.CompareHashAndPassword(a.tokenHash, []byte(token)); err != nil {
			a.logger.Warn("admin token rejected", zap.String("ip", c.ClientIP()))
			respondError(c, http.StatusUnauthorized, "missing or invalid token")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ReloadContent re-reads the content directory and replaces the stored posts.
// The previous posts keep being served when the reload fails.
func (a *API) ReloadContent(c *gin.Context) {
	n, err := a.reloader.Reload(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": n})
}
