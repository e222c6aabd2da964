package service

import (
	"context"
	"errors"
	"strings"

	"bookvault/internal/common"
	"bookvault/internal/common/security"
	"bookvault/internal/domain/model"
	"bookvault/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a token carrying the account's role
// set as held right now. Unknown usernames and wrong passwords are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.Errorf("failed to look up user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, common.Errorf("failed to issue token: %w", err)
	}
	return &LoginResponse{AccessToken: token}, nil
}

// Register creates a new account with role {user}. Registration never grants
// admin.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return common.Errorf("username and password are required: %w", common.ErrBadRequest)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return common.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        []string{model.RoleUser},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}
	return nil
}
