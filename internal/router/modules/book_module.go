package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/container"
	handlers "github.com/booklend/booklend/internal/interface/http"
	"github.com/booklend/booklend/internal/interface/middleware"
)

type BookModule struct {
	Handler *handlers.BookHandler
}

func NewBookModule(h *handlers.BookHandler) *BookModule {
	return &BookModule{Handler: h}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/books", m.Handler.List)
	rg.GET("/books/popular", m.Handler.Popular)
	rg.GET("/books/search", m.Handler.Search)
	rg.GET("/books/:id", m.Handler.Get)

	// Writes and lending require a valid token
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/books", m.Handler.Create)
		auth.PUT("/books/:id", m.Handler.Update)
		auth.DELETE("/books/:id", m.Handler.Delete)
		auth.POST("/books/:id/lend", m.Handler.Lend)
		auth.POST("/books/:id/cover", m.Handler.UploadCover)
	}
}
