package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/usecase"
	"github.com/booklend/booklend/pkg/response"
	"github.com/booklend/booklend/pkg/validation"
)

// AuthorHandler exposes the admin-gated author CRUD. The acting user
// comes from the auth middleware; the use case decides whether that
// user may write.
type AuthorHandler struct {
	Authors *usecase.AuthorUsecase
	Logger  *logrus.Logger
}

func NewAuthorHandler(authors *usecase.AuthorUsecase, logger *logrus.Logger) *AuthorHandler {
	return &AuthorHandler{Authors: authors, Logger: logger}
}

// Create POST /api/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req usecase.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.AdminUserID = c.GetString("userID")

	res, err := h.Authors.Create(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("create author failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"author": res.Author}, res.Message, nil)
}

// Update PUT /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var req usecase.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.AdminUserID = c.GetString("userID")
	req.AuthorID = c.Param("id")

	res, err := h.Authors.Update(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("update author failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"author": res.Author}, res.Message, nil)
}

// Delete DELETE /api/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	req := usecase.DeleteAuthorRequest{
		AdminUserID: c.GetString("userID"),
		AuthorID:    c.Param("id"),
	}

	res, err := h.Authors.Delete(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("delete author failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, res.Message, nil)
}

// List GET /api/authors
func (h *AuthorHandler) List(c *gin.Context) {
	res, err := h.Authors.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list authors failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"authors": res.Authors}, res.Message, gin.H{"total": res.Total})
}

// Popular GET /api/authors/popular
func (h *AuthorHandler) Popular(c *gin.Context) {
	authors, err := h.Authors.Authors.FindPopularAuthors(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("popular authors failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"authors": authors}, "Popular authors retrieved successfully", gin.H{"total": len(authors)})
}
