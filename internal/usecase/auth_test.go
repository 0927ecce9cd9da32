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

func newAuthFixture() (*AuthUsecase, *mock.AuthService, *mock.EmailVerificationService) {
	users := mock.NewAuthService()
	tokens := mock.NewEmailVerificationService()
	uc := NewAuthUsecase(users, tokens, mock.NewCryptoService(), nil)
	return uc, users, tokens
}

func Test_SendEmailVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("blank_email_is_rejected", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		resp, err := uc.SendEmailVerification(ctx, SendEmailVerificationRequest{Email: "   "})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Email is required", resp.Message)
	})

	t.Run("registered_email_is_rejected", func(t *testing.T) {
		uc, users, _ := newAuthFixture()
		_, _ = users.Save(ctx, &entity.User{ID: "u1", Email: "taken@example.com"})

		resp, err := uc.SendEmailVerification(ctx, SendEmailVerificationRequest{Email: "taken@example.com"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Email already registered", resp.Message)
	})

	t.Run("stores_token_and_records_send", func(t *testing.T) {
		uc, _, tokens := newAuthFixture()
		before := time.Now()

		resp, err := uc.SendEmailVerification(ctx, SendEmailVerificationRequest{Email: "new@x.com"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Verification email sent successfully", resp.Message)

		require.Len(t, tokens.Tokens, 1)
		tok := tokens.Tokens[0]
		assert.Equal(t, "new@x.com", tok.Email)
		assert.WithinDuration(t, before.Add(24*time.Hour), tok.ExpiresAt, time.Second)

		require.Len(t, tokens.SentEmails, 1)
		assert.Equal(t, tok.Token, tokens.SentEmails[0].Token)
	})

	t.Run("resend_overwrites_previous_token", func(t *testing.T) {
		uc, _, tokens := newAuthFixture()
		_, err := uc.SendEmailVerification(ctx, SendEmailVerificationRequest{Email: "new@x.com"})
		require.NoError(t, err)
		first := tokens.Tokens[0].Token

		_, err = uc.SendEmailVerification(ctx, SendEmailVerificationRequest{Email: "new@x.com"})
		require.NoError(t, err)

		require.Len(t, tokens.Tokens, 1)
		assert.NotEqual(t, first, tokens.Tokens[0].Token)
	})
}

func Test_VerifyEmailToken(t *testing.T) {
	ctx := context.Background()

	t.Run("blank_token_is_rejected", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		resp, err := uc.VerifyEmailToken(ctx, VerifyEmailTokenRequest{Token: ""})
		require.NoError(t, err)
		assert.Equal(t, "Token is required", resp.Message)
	})

	t.Run("unknown_token_is_invalid", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		resp, err := uc.VerifyEmailToken(ctx, VerifyEmailTokenRequest{Token: "nope"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid token", resp.Message)
	})

	t.Run("expired_token_is_deleted", func(t *testing.T) {
		uc, _, tokens := newAuthFixture()
		require.NoError(t, tokens.SaveEmailVerificationToken(ctx, "a@b.com", "tok", time.Now().Add(-time.Minute)))

		resp, err := uc.VerifyEmailToken(ctx, VerifyEmailTokenRequest{Token: "tok"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Token has expired", resp.Message)
		assert.Empty(t, tokens.Tokens)
	})

	t.Run("valid_token_is_not_consumed", func(t *testing.T) {
		uc, _, tokens := newAuthFixture()
		require.NoError(t, tokens.SaveEmailVerificationToken(ctx, "a@b.com", "tok", time.Now().Add(time.Hour)))

		resp, err := uc.VerifyEmailToken(ctx, VerifyEmailTokenRequest{Token: "tok"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Token is valid", resp.Message)
		assert.Equal(t, "a@b.com", resp.Email)
		assert.Len(t, tokens.Tokens, 1)
	})
}

func Test_CompleteRegistration(t *testing.T) {
	ctx := context.Background()
	valid := CompleteRegistrationRequest{
		Token:       "tok",
		FirstName:   " Ada ",
		LastName:    "Lovelace",
		PhoneNumber: "  ",
		Password:    "secret",
	}

	t.Run("each_required_field_fails_independently", func(t *testing.T) {
		uc, _, _ := newAuthFixture()
		cases := []struct {
			mutate  func(r *CompleteRegistrationRequest)
			message string
		}{
			{func(r *CompleteRegistrationRequest) { r.Token = "" }, "Token is required"},
			{func(r *CompleteRegistrationRequest) { r.FirstName = " " }, "First name is required"},
			{func(r *CompleteRegistrationRequest) { r.LastName = "" }, "Last name is required"},
			{func(r *CompleteRegistrationRequest) { r.Password = "" }, "Password is required"},
		}
		for _, tc := range cases {
			req := valid
			tc.mutate(&req)
			resp, err := uc.CompleteRegistration(ctx, req)
			require.NoError(t, err)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
		}
	})

	t.Run("expired_token_is_deleted_and_no_user_created", func(t *testing.T) {
		uc, users, tokens := newAuthFixture()
		require.NoError(t, tokens.SaveEmailVerificationToken(ctx, "ada@x.com", "tok", time.Now().Add(-time.Second)))

		resp, err := uc.CompleteRegistration(ctx, valid)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Token has expired", resp.Message)
		assert.Empty(t, tokens.Tokens)
		assert.Empty(t, users.Users)
	})

	t.Run("duplicate_email_is_rejected", func(t *testing.T) {
		uc, users, tokens := newAuthFixture()
		require.NoError(t, tokens.SaveEmailVerificationToken(ctx, "ada@x.com", "tok", time.Now().Add(time.Hour)))
		_, _ = users.Save(ctx, &entity.User{ID: "u1", Email: "ada@x.com"})

		resp, err := uc.CompleteRegistration(ctx, valid)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Email already registered", resp.Message)
	})

	t.Run("creates_active_user_and_consumes_token", func(t *testing.T) {
		uc, users, tokens := newAuthFixture()
		require.NoError(t, tokens.SaveEmailVerificationToken(ctx, "ada@x.com", "tok", time.Now().Add(time.Hour)))

		resp, err := uc.CompleteRegistration(ctx, valid)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Registration completed successfully", resp.Message)

		require.NotNil(t, resp.User)
		assert.Equal(t, "ada@x.com", resp.User.Email)
		assert.Equal(t, "Ada", resp.User.FirstName)
		assert.Nil(t, resp.User.PhoneNumber)
		assert.Equal(t, entity.UserStatusActive, resp.User.Status)
		assert.True(t, resp.User.Enabled)
		assert.Equal(t, 3, resp.User.BookLimit)
		assert.Equal(t, entity.RoleUser, resp.User.Role)

		require.Len(t, users.Users, 1)
		assert.Equal(t, "[HASHED]secret", users.Users[0].HashedPassword)
		assert.Empty(t, tokens.Tokens)
	})
}

func Test_Login(t *testing.T) {
	ctx := context.Background()
	crypto := mock.NewCryptoService()
	hash, _ := crypto.HashPassword("secret")

	active := &entity.User{ID: "u1", Email: "ada@x.com", HashedPassword: hash, Enabled: true, Status: entity.UserStatusActive, Role: entity.RoleUser}
	suspended := &entity.User{ID: "u2", Email: "off@x.com", HashedPassword: hash, Enabled: true, Status: entity.UserStatusSuspended}
	uc := NewAuthUsecase(mock.NewAuthService(active, suspended), mock.NewEmailVerificationService(), crypto, nil)

	tests := []struct {
		name        string
		email       string
		password    string
		wantSuccess bool
		wantMessage string
	}{
		{name: "unknown_email", email: "nobody@x.com", password: "secret", wantMessage: "Invalid email or password"},
		{name: "wrong_password", email: "ada@x.com", password: "bad", wantMessage: "Invalid email or password"},
		{name: "inactive_account", email: "off@x.com", password: "secret", wantMessage: "Account is not active"},
		{name: "valid_credentials", email: "ada@x.com", password: "secret", wantSuccess: true, wantMessage: "Login successful"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Login(ctx, LoginRequest{Email: tc.email, Password: tc.password})
			require.NoError(t, err)
			assert.Equal(t, tc.wantSuccess, resp.Success)
			assert.Equal(t, tc.wantMessage, resp.Message)
		})
	}
}
