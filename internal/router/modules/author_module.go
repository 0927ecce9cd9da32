package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/container"
	handlers "github.com/booklend/booklend/internal/interface/http"
	"github.com/booklend/booklend/internal/interface/middleware"
)

type AuthorModule struct {
	Handler *handlers.AuthorHandler
}

func NewAuthorModule(h *handlers.AuthorHandler) *AuthorModule {
	return &AuthorModule{Handler: h}
}

func (m *AuthorModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/authors", m.Handler.List)
	rg.GET("/authors/popular", m.Handler.Popular)

	// Writes require a valid token; the admin-role check happens in the
	// use case against the stored user record.
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/authors", m.Handler.Create)
		auth.PUT("/authors/:id", m.Handler.Update)
		auth.DELETE("/authors/:id", m.Handler.Delete)
	}
}
