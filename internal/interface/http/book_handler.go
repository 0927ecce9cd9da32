package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/usecase"
	"github.com/booklend/booklend/pkg/response"
	"github.com/booklend/booklend/pkg/validation"
)

const maxCoverSize = 5 << 20 // 5 MiB

// BookHandler exposes the catalog: CRUD, lending, popular listing,
// search, and cover upload.
type BookHandler struct {
	Books  *usecase.BookUsecase
	Logger *logrus.Logger
}

func NewBookHandler(books *usecase.BookUsecase, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Books: books, Logger: logger}
}

// Create POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req usecase.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Books.Add(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("create book failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"book": res.Book}, res.Message, nil)
}

// Update PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	var req usecase.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.BookID = c.Param("id")

	res, err := h.Books.Update(c.Request.Context(), req)
	if err != nil {
		h.Logger.WithError(err).Error("update book failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"book": res.Book}, res.Message, nil)
}

// Delete DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	res, err := h.Books.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("delete book failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, res.Message, nil)
}

// Get GET /api/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	res, err := h.Books.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("get book failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"book": res.Book}, res.Message, nil)
}

// List GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	res, err := h.Books.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list books failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"books": res.Books}, res.Message, gin.H{"total": res.Total})
}

// Popular GET /api/books/popular
func (h *BookHandler) Popular(c *gin.Context) {
	res, err := h.Books.GetPopular(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("popular books failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"books": res.Books}, res.Message, gin.H{"total": res.Total})
}

// Lend POST /api/books/:id/lend
func (h *BookHandler) Lend(c *gin.Context) {
	var req usecase.LendBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.BookID = c.Param("id")
	if req.BorrowerID == "" {
		req.BorrowerID = c.GetString("userID")
	}

	res := h.Books.Lend(c.Request.Context(), req)
	if !res.Success {
		response.Error[any](c, statusForFailure(res.Message), res.Message, nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, res.Message, nil)
}

// Search GET /api/books/search?q=...&size=...
func (h *BookHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Books.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("book search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": hits}, "Search completed", gin.H{"total": len(hits)})
}

// UploadCover POST /api/books/:id/cover (multipart field "cover")
func (h *BookHandler) UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("cover")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cover file is required", nil)
		return
	}
	if fileHeader.Size > maxCoverSize {
		response.Error[any](c, http.StatusRequestEntityTooLarge, "cover file too large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read cover file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Books.UploadCover(c.Request.Context(), c.Param("id"), f,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, usecase.ErrBookNotFound) {
			response.Error[any](c, http.StatusNotFound, "Book not found", nil)
			return
		}
		h.Logger.WithError(err).Error("cover upload failed")
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover_url": url}, "Cover uploaded successfully", nil)
}
