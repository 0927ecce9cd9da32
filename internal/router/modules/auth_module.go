package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/booklend/booklend/internal/container"
	handlers "github.com/booklend/booklend/internal/interface/http"
	"github.com/booklend/booklend/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	sendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/send-verification", sendLimiter, m.Handler.SendVerification)
	rg.GET("/auth/verify-token/:token", verifyLimiter, m.Handler.VerifyToken)
	rg.POST("/auth/complete-registration", registerLimiter, m.Handler.CompleteRegistration)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", loginLimiter, m.Handler.Refresh)
}
