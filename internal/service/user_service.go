package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/model"
	"github.com/AstroBookings/api-system/internal/pkg/apperr"
	"github.com/AstroBookings/api-system/internal/pkg/hash"
	"github.com/AstroBookings/api-system/internal/pkg/ident"
	"github.com/AstroBookings/api-system/internal/pkg/token"
	"github.com/AstroBookings/api-system/internal/repo"
)

// RegisterInput carries the pre-validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService orchestrates registration, login, lookup and deletion
// over the user directory.
type UserService struct {
	users  repo.UserRepository
	tokens *token.Service
	ids    *ident.Generator
	logger *zap.Logger
}

func NewUserService(users repo.UserRepository, tokens *token.Service, ids *ident.Generator, logger *zap.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, ids: ids, logger: logger}
}

// Register creates a user and issues a token for it. A user with the
// same email must not exist.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.UserToken, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		s.logger.Warn("user already exists", zap.String("email", input.Email))
		return nil, apperr.WithMessage(apperr.ErrConflict, "User already exists")
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	user := &model.User{
		ID:           s.ids.NextID(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: hash.Text(input.Password),
	}
	if err := s.users.Save(ctx, user); err != nil {
		if apperr.IsConflict(err) {
			// Lost a race against a concurrent registration.
			return nil, apperr.WithMessage(apperr.ErrConflict, "User already exists")
		}
		return nil, err
	}
	return s.userToken(user)
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password produce the same error, so callers cannot probe which
// emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.UserToken, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			s.logger.Debug("user not found", zap.String("email", email))
			return nil, unauthorizedUser(email)
		}
		return nil, err
	}
	if !hash.Verify(password, user.PasswordHash) {
		s.logger.Debug("invalid password", zap.String("email", email))
		return nil, unauthorizedUser(email)
	}
	return s.userToken(user)
}

// Delete removes the user with the given id. Trust is established by
// the caller (the bearer guard); no credential re-check happens here.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.users.Delete(ctx, id)
	if apperr.IsNotFound(err) {
		return userNotFound(id)
	}
	return err
}

// FindByID returns the public fields of the user with the given id.
func (s *UserService) FindByID(ctx context.Context, id string) (*model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, userNotFound(id)
		}
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *UserService) userToken(user *model.User) (*model.UserToken, error) {
	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &model.UserToken{User: user.Public(), Token: tok}, nil
}

func unauthorizedUser(email string) error {
	return apperr.WithMessage(apperr.ErrUnauthorized, fmt.Sprintf("Unauthorized user: %s", email))
}

func userNotFound(id string) error {
	return apperr.WithMessage(apperr.ErrNotFound, fmt.Sprintf("User not found: %s", id))
}
