package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/pkg/apperr"
	"github.com/AstroBookings/api-system/internal/pkg/hash"
	"github.com/AstroBookings/api-system/internal/repo"
)

// AuthService carries the credential-checked operations of the legacy
// authentication surface. Register and login are shared with
// UserService; what remains here is the verify-and-remove variant of
// deletion, where trust comes from a submitted password instead of a
// bearer token.
type AuthService struct {
	users  repo.UserRepository
	logger *zap.Logger
}

func NewAuthService(users repo.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// DeleteByCredentials re-validates the email/password pair and removes
// the matching user. Failures are reported with the same error for
// unknown email and wrong password.
func (s *AuthService) DeleteByCredentials(ctx context.Context, email, password string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			s.logger.Debug("user not found", zap.String("email", email))
			return unauthorizedUser(email)
		}
		return err
	}
	if !hash.Verify(password, user.PasswordHash) {
		s.logger.Debug("invalid password", zap.String("email", email))
		return unauthorizedUser(email)
	}
	return s.users.Delete(ctx, user.ID)
}
