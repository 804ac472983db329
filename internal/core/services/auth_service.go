package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
	"github.com/workdevapi-byte/the-reserve-backend/internal/platform/config"
	"github.com/workdevapi-byte/the-reserve-backend/internal/utils"
)

// authService registers users and exchanges credentials for bearer tokens.
// The user id it bakes into the token subject is the only identity the
// ledger ever trusts.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, repos portsrepo.RepositoryProvider) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: repos.UserRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign token: %v", apperrors.ErrInternal, err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
	}, nil
}

// Register creates a new user and logs them in immediately.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrInternal, err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "failed to register user")
		return nil, err
	}

	return s.issueToken(&user)
}

// Login verifies credentials. A missing user and a wrong password produce
// the same error so the endpoint cannot be used to probe for accounts.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return s.issueToken(user)
}
