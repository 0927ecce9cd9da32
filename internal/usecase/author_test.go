package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service/mock"
)

func newAuthorFixture() (*AuthorUsecase, *mock.AuthorService) {
	admin := &entity.User{ID: "admin-1", Email: "admin@x.com", Role: entity.RoleAdmin}
	regular := &entity.User{ID: "user-1", Email: "user@x.com", Role: entity.RoleUser}
	authors := mock.NewAuthorService()
	uc := NewAuthorUsecase(authors, mock.NewAuthService(admin, regular), mock.NewCryptoService(), nil)
	return uc, authors
}

func validCreateAuthor() CreateAuthorRequest {
	return CreateAuthorRequest{
		AdminUserID: "admin-1",
		FirstName:   " Ursula ",
		LastName:    "Le Guin",
		Email:       " Ursula@Example.com ",
		Biography:   "Wrote Earthsea.",
		Nationality: "American",
		BirthDate:   time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC),
	}
}

func Test_CreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("admin_gate_failure_propagates_verbatim", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		req := validCreateAuthor()
		req.AdminUserID = "user-1"
		resp, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Access denied. Admin role required", resp.Message)

		req.AdminUserID = "ghost"
		resp, err = uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "User not found", resp.Message)
	})

	t.Run("first_missing_field_wins", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		req := validCreateAuthor()
		req.LastName = ""
		req.Biography = " "
		resp, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Last name is required", resp.Message)
	})

	t.Run("birth_date_is_required", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		req := validCreateAuthor()
		req.BirthDate = time.Time{}
		resp, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Birth date is required", resp.Message)
	})

	t.Run("death_before_birth_is_rejected", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		req := validCreateAuthor()
		death := req.BirthDate.AddDate(-1, 0, 0)
		req.DeathDate = &death
		resp, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Death date must be after birth date", resp.Message)
	})

	t.Run("bad_email_is_rejected", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		req := validCreateAuthor()
		req.Email = "not-an-email"
		resp, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Invalid email format", resp.Message)
	})

	t.Run("round_trip_preserves_fields", func(t *testing.T) {
		uc, authors := newAuthorFixture()
		resp, err := uc.Create(ctx, validCreateAuthor())
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "Author created successfully", resp.Message)

		stored, err := authors.FindByID(ctx, resp.Author.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Ursula", stored.FirstName)
		assert.Equal(t, "Le Guin", stored.LastName)
		require.NotNil(t, stored.Email)
		assert.Equal(t, "ursula@example.com", *stored.Email)
		assert.Nil(t, stored.PhoneNumber)
		assert.False(t, stored.IsPopular)
	})
}

func seedAuthor(t *testing.T, uc *AuthorUsecase) *entity.Author {
	t.Helper()
	resp, err := uc.Create(context.Background(), validCreateAuthor())
	require.NoError(t, err)
	require.True(t, resp.Success)
	return resp.Author
}

func Test_UpdateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown_author_fails", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		resp, err := uc.Update(ctx, UpdateAuthorRequest{AdminUserID: "admin-1", AuthorID: "ghost"})
		require.NoError(t, err)
		assert.Equal(t, "Author not found", resp.Message)
	})

	t.Run("merged_dates_are_revalidated", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		author := seedAuthor(t, uc)

		// death date before the stored birth date
		resp, err := uc.Update(ctx, UpdateAuthorRequest{
			AdminUserID: "admin-1",
			AuthorID:    author.ID,
			DeathDate:   Some(author.BirthDate.AddDate(-5, 0, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, "Death date must be after birth date", resp.Message)
	})

	t.Run("absent_fields_keep_existing_values", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		author := seedAuthor(t, uc)

		bio := " Updated biography "
		resp, err := uc.Update(ctx, UpdateAuthorRequest{
			AdminUserID: "admin-1",
			AuthorID:    author.ID,
			Biography:   &bio,
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "Author updated successfully", resp.Message)
		assert.Equal(t, "Updated biography", resp.Author.Biography)
		assert.Equal(t, author.FirstName, resp.Author.FirstName)
		assert.Equal(t, author.Email, resp.Author.Email)
	})

	t.Run("explicit_null_clears_email", func(t *testing.T) {
		uc, _ := newAuthorFixture()
		author := seedAuthor(t, uc)

		resp, err := uc.Update(ctx, UpdateAuthorRequest{
			AdminUserID: "admin-1",
			AuthorID:    author.ID,
			Email:       Null[string](),
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Nil(t, resp.Author.Email)
	})
}

func Test_DeleteAuthor_SecondDeleteFails(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthorFixture()
	author := seedAuthor(t, uc)

	resp, err := uc.Delete(ctx, DeleteAuthorRequest{AdminUserID: "admin-1", AuthorID: author.ID})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Author deleted successfully", resp.Message)

	resp, err = uc.Delete(ctx, DeleteAuthorRequest{AdminUserID: "admin-1", AuthorID: author.ID})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Author not found", resp.Message)
}
