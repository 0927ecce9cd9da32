package usecase

import (
	"context"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
)

// AuthorizationResult mirrors the uniform success/message shape of the
// domain validators.
type AuthorizationResult struct {
	Success bool
	Message string
}

// VerifyAdminRole resolves a user id to an admin-only gate. It does not
// consult Enabled or Status: a disabled admin still passes. The error
// return is reserved for persistence failure.
func VerifyAdminRole(ctx context.Context, users service.AuthService, userID string) (AuthorizationResult, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return AuthorizationResult{}, err
	}
	if user == nil {
		return AuthorizationResult{Success: false, Message: "User not found"}, nil
	}
	if user.Role != entity.RoleAdmin {
		return AuthorizationResult{Success: false, Message: "Access denied. Admin role required"}, nil
	}
	return AuthorizationResult{Success: true, Message: "Authorization successful"}, nil
}
