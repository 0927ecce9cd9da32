package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/usecase"
	"github.com/booklend/booklend/pkg/helpers"
	"github.com/booklend/booklend/pkg/response"
	"github.com/booklend/booklend/pkg/validation"
)

// AuthHandler exposes the registration and login flows.
type AuthHandler struct {
	Auth   *usecase.AuthUsecase
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthHandler(auth *usecase.AuthUsecase, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, JWT: jwt, Logger: logger}
}

// SendVerification POST /api/auth/send-verification {email}
func (h *AuthHandler) SendVerification(c *gin.Context) {
	var req usecase.SendEmailVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Auth.SendEmailVerification(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("send verification failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, res.Message, nil)
}

// VerifyToken GET /api/auth/verify-token/:token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	req := usecase.VerifyEmailTokenRequest{Token: c.Param("token")}

	res, err := h.Auth.VerifyEmailToken(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("verify token failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"email": res.Email}, res.Message, nil)
}

// CompleteRegistration POST /api/auth/complete-registration
func (h *AuthHandler) CompleteRegistration(c *gin.Context) {
	var req usecase.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Auth.CompleteRegistration(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("complete registration failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": res.User}, res.Message, nil)
}

// Login POST /api/auth/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req usecase.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}

	access, accessExp, err := h.JWT.GenerateAccessToken(res.User.ID, res.User.Email, string(res.User.Role))
	if err != nil {
		h.Logger.WithError(err).Error("access token generation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	refresh, _, err := h.JWT.GenerateRefreshToken(res.User.ID)
	if err != nil {
		h.Logger.WithError(err).Error("refresh token generation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          res.User,
		"access_token":  access,
		"refresh_token": refresh,
		"expires_at":    accessExp,
	}, res.Message, nil)
}

// Refresh POST /api/auth/refresh {refresh_token}
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	claims, err := h.JWT.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	user, err := h.Auth.Users.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.WithError(err).Error("refresh lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if user == nil || !user.Enabled {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	access, accessExp, err := h.JWT.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.Logger.WithError(err).Error("access token generation failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": access,
		"expires_at":   accessExp,
	}, "Token refreshed successfully", nil)
}
