package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

const verificationTokenTTL = 24 * time.Hour

// registered users start with a small loan allowance
const defaultBookLimit = 3

// AuthUsecase covers registration and login: issuing verification
// tokens, confirming them, creating the user record, and checking
// credentials.
type AuthUsecase struct {
	Users  service.AuthService
	Tokens service.EmailVerificationService
	Crypto service.CryptoService
	Logger *logrus.Logger

	// now is swappable for expiry tests
	now func() time.Time
}

func NewAuthUsecase(users service.AuthService, tokens service.EmailVerificationService, crypto service.CryptoService, logger *logrus.Logger) *AuthUsecase {
	return &AuthUsecase{Users: users, Tokens: tokens, Crypto: crypto, Logger: logger, now: time.Now}
}

type SendEmailVerificationRequest struct {
	Email string `json:"email"`
}

type SendEmailVerificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendEmailVerification issues a fresh token for the address and
// triggers the verification email. A token previously issued for the
// same address is overwritten.
func (uc *AuthUsecase) SendEmailVerification(ctx context.Context, req SendEmailVerificationRequest) (SendEmailVerificationResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return SendEmailVerificationResponse{Success: false, Message: "Email is required"}, nil
	}

	existing, err := uc.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return SendEmailVerificationResponse{}, err
	}
	if existing != nil {
		return SendEmailVerificationResponse{Success: false, Message: "Email already registered"}, nil
	}

	token, err := uc.Crypto.GenerateRandomToken()
	if err != nil {
		return SendEmailVerificationResponse{}, err
	}
	expiresAt := uc.now().Add(verificationTokenTTL)
	if err := uc.Tokens.SaveEmailVerificationToken(ctx, req.Email, token, expiresAt); err != nil {
		return SendEmailVerificationResponse{}, err
	}
	if err := uc.Tokens.SendVerificationEmail(ctx, req.Email, token); err != nil {
		return SendEmailVerificationResponse{}, err
	}

	return SendEmailVerificationResponse{Success: true, Message: "Verification email sent successfully"}, nil
}

type VerifyEmailTokenRequest struct {
	Token string `json:"token"`
}

type VerifyEmailTokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

// VerifyEmailToken checks a token without consuming it; deletion only
// happens on registration completion or when expiry is detected here.
func (uc *AuthUsecase) VerifyEmailToken(ctx context.Context, req VerifyEmailTokenRequest) (VerifyEmailTokenResponse, error) {
	if strings.TrimSpace(req.Token) == "" {
		return VerifyEmailTokenResponse{Success: false, Message: "Token is required"}, nil
	}

	tokenData, err := uc.Tokens.FindEmailVerificationToken(ctx, req.Token)
	if err != nil {
		return VerifyEmailTokenResponse{}, err
	}
	if tokenData == nil {
		return VerifyEmailTokenResponse{Success: false, Message: "Invalid token"}, nil
	}
	if tokenData.ExpiresAt.Before(uc.now()) {
		if err := uc.Tokens.DeleteEmailVerificationToken(ctx, req.Token); err != nil {
			return VerifyEmailTokenResponse{}, err
		}
		return VerifyEmailTokenResponse{Success: false, Message: "Token has expired"}, nil
	}

	return VerifyEmailTokenResponse{Success: true, Message: "Token is valid", Email: tokenData.Email}, nil
}

type CompleteRegistrationRequest struct {
	Token       string `json:"token"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type CompleteRegistrationResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *entity.SecureUser `json:"user,omitempty"`
}

// CompleteRegistration turns a valid verification token into an active
// user account and consumes the token.
func (uc *AuthUsecase) CompleteRegistration(ctx context.Context, req CompleteRegistrationRequest) (CompleteRegistrationResponse, error) {
	required := []struct {
		value string
		name  string
	}{
		{req.Token, "Token"},
		{req.FirstName, "First name"},
		{req.LastName, "Last name"},
		{req.Password, "Password"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return CompleteRegistrationResponse{Success: false, Message: f.name + " is required"}, nil
		}
	}

	tokenData, err := uc.Tokens.FindEmailVerificationToken(ctx, req.Token)
	if err != nil {
		return CompleteRegistrationResponse{}, err
	}
	if tokenData == nil {
		return CompleteRegistrationResponse{Success: false, Message: "Invalid token"}, nil
	}
	if tokenData.ExpiresAt.Before(uc.now()) {
		if err := uc.Tokens.DeleteEmailVerificationToken(ctx, req.Token); err != nil {
			return CompleteRegistrationResponse{}, err
		}
		return CompleteRegistrationResponse{Success: false, Message: "Token has expired"}, nil
	}

	existing, err := uc.Users.FindByEmail(ctx, tokenData.Email)
	if err != nil {
		return CompleteRegistrationResponse{}, err
	}
	if existing != nil {
		return CompleteRegistrationResponse{Success: false, Message: "Email already registered"}, nil
	}

	hashed, err := uc.Crypto.HashPassword(req.Password)
	if err != nil {
		return CompleteRegistrationResponse{}, err
	}

	newUser := &entity.User{
		ID:               uc.Crypto.GenerateUUID(),
		Email:            tokenData.Email,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		PhoneNumber:      trimOrNil(req.PhoneNumber),
		HashedPassword:   hashed,
		Status:           entity.UserStatusActive,
		Enabled:          true,
		BookLimit:        defaultBookLimit,
		RegistrationDate: uc.now(),
		Role:             entity.RoleUser,
	}

	saved, err := uc.Users.Save(ctx, newUser)
	if err != nil {
		return CompleteRegistrationResponse{}, err
	}
	if err := uc.Tokens.DeleteEmailVerificationToken(ctx, req.Token); err != nil {
		if uc.Logger != nil {
			uc.Logger.WithError(err).WithField("email", tokenData.Email).Warn("failed to delete consumed verification token")
		}
	}

	return CompleteRegistrationResponse{
		Success: true,
		Message: "Registration completed successfully",
		User:    saved.Secure(),
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *entity.SecureUser `json:"user,omitempty"`
}

// Login checks credentials and account state. Token issuance is the
// HTTP layer's concern.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return LoginResponse{Success: false, Message: "Email and password are required"}, nil
	}

	user, err := uc.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	if user == nil {
		return LoginResponse{Success: false, Message: "Invalid email or password"}, nil
	}
	if !user.Enabled || user.Status != entity.UserStatusActive {
		return LoginResponse{Success: false, Message: "Account is not active"}, nil
	}
	if !uc.Crypto.ComparePassword(req.Password, user.HashedPassword) {
		return LoginResponse{Success: false, Message: "Invalid email or password"}, nil
	}

	return LoginResponse{Success: true, Message: "Login successful", User: user.Secure()}, nil
}
