package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service/mock"
	"github.com/booklend/booklend/internal/usecase"
	"github.com/booklend/booklend/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

func Test_StatusForFailure(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"Book not found", http.StatusNotFound},
		{"Author not found", http.StatusNotFound},
		{"User not found", http.StatusNotFound},
		{"Access denied. Admin role required", http.StatusForbidden},
		{"Email already registered", http.StatusConflict},
		{"Book with this ISBN already exists", http.StatusConflict},
		{"Book is already lent", http.StatusConflict},
		{"Account is not active", http.StatusUnauthorized},
		{"Invalid email or password", http.StatusUnauthorized},
		{"Email is required", http.StatusBadRequest},
		{"Invalid token", http.StatusBadRequest},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusForFailure(tc.message), tc.message)
	}
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func newAuthRouter(users *mock.AuthService, tokens *mock.EmailVerificationService) *gin.Engine {
	uc := usecase.NewAuthUsecase(users, tokens, mock.NewCryptoService(), testLogger())
	jwt := helpers.NewJWTManager("testaccess", "testrefresh", time.Hour, 24*time.Hour)
	h := NewAuthHandler(uc, jwt, testLogger())

	r := gin.New()
	r.POST("/api/auth/send-verification", h.SendVerification)
	r.GET("/api/auth/verify-token/:token", h.VerifyToken)
	r.POST("/api/auth/complete-registration", h.CompleteRegistration)
	r.POST("/api/auth/login", h.Login)
	return r
}

func Test_AuthEndpoints(t *testing.T) {
	t.Run("send_verification_conflict_maps_to_409", func(t *testing.T) {
		users := mock.NewAuthService(&entity.User{ID: "u1", Email: "taken@x.com"})
		r := newAuthRouter(users, mock.NewEmailVerificationService())

		w := perform(r, http.MethodPost, "/api/auth/send-verification", gin.H{"email": "taken@x.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Email already registered", env["message"])
		assert.Equal(t, false, env["success"])
	})

	t.Run("verify_token_round_trip", func(t *testing.T) {
		tokens := mock.NewEmailVerificationService()
		require.NoError(t, tokens.SaveEmailVerificationToken(context.Background(), "new@x.com", "tok", time.Now().Add(time.Hour)))
		r := newAuthRouter(mock.NewAuthService(), tokens)

		w := perform(r, http.MethodGet, "/api/auth/verify-token/tok", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Token is valid", env["message"])

		w = perform(r, http.MethodGet, "/api/auth/verify-token/nope", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("registration_then_login_issues_tokens", func(t *testing.T) {
		users := mock.NewAuthService()
		tokens := mock.NewEmailVerificationService()
		require.NoError(t, tokens.SaveEmailVerificationToken(context.Background(), "ada@x.com", "tok", time.Now().Add(time.Hour)))
		r := newAuthRouter(users, tokens)

		w := perform(r, http.MethodPost, "/api/auth/complete-registration", gin.H{
			"token":      "tok",
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"password":   "secret",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = perform(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ada@x.com", "password": "secret"})
		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data, ok := env["data"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, data["access_token"])
		assert.NotEmpty(t, data["refresh_token"])

		// hashed password never leaves the API
		assert.NotContains(t, w.Body.String(), "[HASHED]")
	})

	t.Run("bad_credentials_map_to_401", func(t *testing.T) {
		r := newAuthRouter(mock.NewAuthService(), mock.NewEmailVerificationService())
		w := perform(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@x.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// fakeAuth stands in for the JWT middleware and injects the acting user.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newAuthorRouter(actingUserID string) *gin.Engine {
	admin := &entity.User{ID: "admin-1", Email: "admin@x.com", Role: entity.RoleAdmin}
	regular := &entity.User{ID: "user-1", Email: "user@x.com", Role: entity.RoleUser}
	uc := usecase.NewAuthorUsecase(mock.NewAuthorService(), mock.NewAuthService(admin, regular), mock.NewCryptoService(), testLogger())
	h := NewAuthorHandler(uc, testLogger())

	r := gin.New()
	r.GET("/api/authors", h.List)
	auth := r.Group("/", fakeAuth(actingUserID))
	auth.POST("/api/authors", h.Create)
	auth.DELETE("/api/authors/:id", h.Delete)
	return r
}

func Test_AuthorEndpoints(t *testing.T) {
	createBody := gin.H{
		"first_name":  "Ursula",
		"last_name":   "Le Guin",
		"biography":   "Wrote Earthsea.",
		"nationality": "American",
		"birth_date":  "1929-10-21T00:00:00Z",
	}

	t.Run("non_admin_create_maps_to_403", func(t *testing.T) {
		r := newAuthorRouter("user-1")
		w := perform(r, http.MethodPost, "/api/authors", createBody)
		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Access denied. Admin role required", env["message"])
	})

	t.Run("admin_create_then_delete", func(t *testing.T) {
		r := newAuthorRouter("admin-1")
		w := perform(r, http.MethodPost, "/api/authors", createBody)
		require.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		data := env["data"].(map[string]any)
		author := data["author"].(map[string]any)
		id := author["id"].(string)

		w = perform(r, http.MethodDelete, "/api/authors/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = perform(r, http.MethodDelete, "/api/authors/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func newBookRouter() *gin.Engine {
	uc := usecase.NewBookUsecase(mock.NewBookService(), mock.NewCryptoService(), testLogger())
	h := NewBookHandler(uc, testLogger())

	r := gin.New()
	r.GET("/api/books/popular", h.Popular)
	r.GET("/api/books/:id", h.Get)
	auth := r.Group("/", fakeAuth("u1"))
	auth.POST("/api/books", h.Create)
	auth.POST("/api/books/:id/lend", h.Lend)
	return r
}

func Test_BookEndpoints(t *testing.T) {
	r := newBookRouter()

	t.Run("missing_isbn_maps_to_400", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/books", gin.H{"title": "No ISBN"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "ISBN is required", env["message"])
	})

	t.Run("create_lend_and_relend", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/api/books", gin.H{
			"title":            "The Dispossessed",
			"isbn":             9780060512750,
			"pages":            387,
			"publication_date": "1974-05-01T00:00:00Z",
			"publisher":        "Harper & Row",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		book := env["data"].(map[string]any)["book"].(map[string]any)
		id := book["id"].(string)

		w = perform(r, http.MethodPost, "/api/books/"+id+"/lend", gin.H{"borrower_id": "u2"})
		assert.Equal(t, http.StatusOK, w.Code)

		w = perform(r, http.MethodPost, "/api/books/"+id+"/lend", gin.H{"borrower_id": "u3"})
		assert.Equal(t, http.StatusConflict, w.Code)
		env = decodeEnvelope(t, w)
		assert.Equal(t, "Book is already lent", env["message"])
	})

	t.Run("popular_empty_still_200", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/books/popular", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "No popular books found", env["message"])
	})

	t.Run("unknown_book_maps_to_404", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/books/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
