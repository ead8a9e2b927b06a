package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/domain"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/cryptox"
	"github.com/aussiebroadwan/userdeck/pkg/idx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

var (
	ErrAlreadyBootstrapped = errors.New("already_bootstrapped")
	ErrBootstrapToken      = errors.New("invalid_bootstrap_token")
)

// BootstrapService seeds the first admin account into an empty database. A
// fresh deployment has no users and therefore no way to log in; bootstrap is
// the one-shot escape hatch and disables itself once any user exists.
type BootstrapService struct {
	Store store.Store

	// Token, when non-empty, must be presented by the caller. Deployments
	// reachable before first boot should set it.
	Token string
}

// Bootstrap creates the initial admin. The emptiness check and the insert run
// in one transaction so concurrent calls cannot both succeed.
func (s *BootstrapService) Bootstrap(ctx context.Context, token, username, password string) (domain.User, error) {
	if s.Token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		return domain.User{}, ErrBootstrapToken
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return domain.User{}, ErrMissingCredentials
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrAlreadyBootstrapped
		}
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("bootstrap admin created", "username", username)
	return u, nil
}
