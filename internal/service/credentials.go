package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/userdeck/internal/domain"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/cryptox"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// CredentialService authenticates username/password pairs against stored
// records. It has no side effects beyond the storage read.
type CredentialService struct {
	Store store.Store
}

// Login verifies the presented credentials and returns the verified identity.
//
// An unknown username and a wrong password both surface as
// ErrInvalidCredentials so callers cannot enumerate usernames. Blank input is
// rejected with ErrMissingCredentials before storage is touched.
func (s *CredentialService) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return domain.Identity{}, ErrMissingCredentials
	}

	u, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrInvalidCredentials
		}
		return domain.Identity{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("password verification failed", "username", username)
		return domain.Identity{}, ErrInvalidCredentials
	}

	return domain.Identity{Username: u.Username, IsAdmin: u.IsAdmin}, nil
}
