package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
	"github.com/booklend/booklend/internal/validation"
)

// AuthorUsecase covers the admin-gated author CRUD.
type AuthorUsecase struct {
	Authors service.AuthorService
	Users   service.AuthService
	Crypto  service.CryptoService
	Logger  *logrus.Logger
}

func NewAuthorUsecase(authors service.AuthorService, users service.AuthService, crypto service.CryptoService, logger *logrus.Logger) *AuthorUsecase {
	return &AuthorUsecase{Authors: authors, Users: users, Crypto: crypto, Logger: logger}
}

type CreateAuthorRequest struct {
	AdminUserID string     `json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	Biography   string     `json:"biography"`
	Nationality string     `json:"nationality"`
	BirthDate   time.Time  `json:"birth_date"`
	DeathDate   *time.Time `json:"death_date"`
}

type AuthorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Author  *entity.Author `json:"author,omitempty"`
}

func (uc *AuthorUsecase) Create(ctx context.Context, req CreateAuthorRequest) (AuthorResponse, error) {
	authRes, err := VerifyAdminRole(ctx, uc.Users, req.AdminUserID)
	if err != nil {
		return AuthorResponse{}, err
	}
	if !authRes.Success {
		return AuthorResponse{Success: false, Message: authRes.Message}, nil
	}

	fieldsRes := validation.ValidateRequiredFields([]validation.RequiredField{
		{Value: req.FirstName, Name: "First name"},
		{Value: req.LastName, Name: "Last name"},
		{Value: req.Biography, Name: "Biography"},
		{Value: req.Nationality, Name: "Nationality"},
	})
	if !fieldsRes.Success {
		return AuthorResponse{Success: false, Message: fieldsRes.Message}, nil
	}

	if req.BirthDate.IsZero() {
		return AuthorResponse{Success: false, Message: "Birth date is required"}, nil
	}
	if dateRes := validation.ValidateBirthDeathDates(req.BirthDate, req.DeathDate); !dateRes.Success {
		return AuthorResponse{Success: false, Message: dateRes.Message}, nil
	}

	email, err := validation.ValidateAndNormalizeEmail(req.Email)
	if err != nil {
		return AuthorResponse{Success: false, Message: "Invalid email format"}, nil
	}

	newAuthor := &entity.Author{
		ID:          uc.Crypto.GenerateUUID(),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       email,
		PhoneNumber: trimOrNil(req.PhoneNumber),
		Biography:   strings.TrimSpace(req.Biography),
		Nationality: strings.TrimSpace(req.Nationality),
		BirthDate:   req.BirthDate,
		DeathDate:   req.DeathDate,
		IsPopular:   false,
	}

	saved, err := uc.Authors.Save(ctx, newAuthor)
	if err != nil {
		return AuthorResponse{}, err
	}

	return AuthorResponse{Success: true, Message: "Author created successfully", Author: saved}, nil
}

type UpdateAuthorRequest struct {
	AdminUserID string              `json:"-"`
	AuthorID    string              `json:"-"`
	FirstName   *string             `json:"first_name"`
	LastName    *string             `json:"last_name"`
	Email       Optional[string]    `json:"email"`
	PhoneNumber Optional[string]    `json:"phone_number"`
	Biography   *string             `json:"biography"`
	Nationality *string             `json:"nationality"`
	BirthDate   *time.Time          `json:"birth_date"`
	DeathDate   Optional[time.Time] `json:"death_date"`
	IsPopular   *bool               `json:"is_popular"`
}

// Update merges the supplied fields into the stored author. Absent
// fields keep their current value; explicit nulls clear the nullable
// ones.
func (uc *AuthorUsecase) Update(ctx context.Context, req UpdateAuthorRequest) (AuthorResponse, error) {
	authRes, err := VerifyAdminRole(ctx, uc.Users, req.AdminUserID)
	if err != nil {
		return AuthorResponse{}, err
	}
	if !authRes.Success {
		return AuthorResponse{Success: false, Message: authRes.Message}, nil
	}

	existing, err := uc.Authors.FindByID(ctx, req.AuthorID)
	if err != nil {
		return AuthorResponse{}, err
	}
	if existing == nil {
		return AuthorResponse{Success: false, Message: "Author not found"}, nil
	}

	birthDate := existing.BirthDate
	if req.BirthDate != nil {
		birthDate = *req.BirthDate
	}
	deathDate := existing.DeathDate
	if req.DeathDate.Set {
		deathDate = req.DeathDate.Value
	}
	if dateRes := validation.ValidateBirthDeathDates(birthDate, deathDate); !dateRes.Success {
		return AuthorResponse{Success: false, Message: dateRes.Message}, nil
	}

	email := existing.Email
	if req.Email.Set {
		supplied := ""
		if req.Email.Value != nil {
			supplied = *req.Email.Value
		}
		email, err = validation.ValidateAndNormalizeEmail(supplied)
		if err != nil {
			return AuthorResponse{Success: false, Message: "Invalid email format"}, nil
		}
	}

	phone := existing.PhoneNumber
	if req.PhoneNumber.Set {
		phone = nil
		if req.PhoneNumber.Value != nil {
			phone = trimOrNil(*req.PhoneNumber.Value)
		}
	}

	isPopular := existing.IsPopular
	if req.IsPopular != nil {
		isPopular = *req.IsPopular
	}

	updated := &entity.Author{
		ID:          existing.ID,
		FirstName:   trimOrDefault(req.FirstName, existing.FirstName),
		LastName:    trimOrDefault(req.LastName, existing.LastName),
		Email:       email,
		PhoneNumber: phone,
		Biography:   trimOrDefault(req.Biography, existing.Biography),
		Nationality: trimOrDefault(req.Nationality, existing.Nationality),
		BirthDate:   birthDate,
		DeathDate:   deathDate,
		IsPopular:   isPopular,
	}

	saved, err := uc.Authors.Save(ctx, updated)
	if err != nil {
		return AuthorResponse{}, err
	}

	return AuthorResponse{Success: true, Message: "Author updated successfully", Author: saved}, nil
}

type DeleteAuthorRequest struct {
	AdminUserID string
	AuthorID    string
}

type DeleteAuthorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (uc *AuthorUsecase) Delete(ctx context.Context, req DeleteAuthorRequest) (DeleteAuthorResponse, error) {
	authRes, err := VerifyAdminRole(ctx, uc.Users, req.AdminUserID)
	if err != nil {
		return DeleteAuthorResponse{}, err
	}
	if !authRes.Success {
		return DeleteAuthorResponse{Success: false, Message: authRes.Message}, nil
	}

	existing, err := uc.Authors.FindByID(ctx, req.AuthorID)
	if err != nil {
		return DeleteAuthorResponse{}, err
	}
	if existing == nil {
		return DeleteAuthorResponse{Success: false, Message: "Author not found"}, nil
	}

	if err := uc.Authors.Delete(ctx, req.AuthorID); err != nil {
		return DeleteAuthorResponse{}, err
	}

	return DeleteAuthorResponse{Success: true, Message: "Author deleted successfully"}, nil
}

type ListAuthorsResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Authors []entity.Author `json:"authors"`
	Total   int             `json:"total"`
}

func (uc *AuthorUsecase) List(ctx context.Context) (ListAuthorsResponse, error) {
	authors, err := uc.Authors.FindAll(ctx)
	if err != nil {
		return ListAuthorsResponse{}, err
	}
	return ListAuthorsResponse{
		Success: true,
		Message: "Authors retrieved successfully",
		Authors: authors,
		Total:   len(authors),
	}, nil
}
