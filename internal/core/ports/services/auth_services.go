package services

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// AuthSvcFacade registers users and exchanges credentials for bearer tokens.
// The verified user id it issues is the only identity the ledger ever sees.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
