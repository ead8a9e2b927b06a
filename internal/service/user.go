package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/domain"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/cryptox"
	"github.com/aussiebroadwan/userdeck/pkg/idx"
)

var (
	ErrBlankUsername = errors.New("username must not be blank")
	ErrBlankPassword = errors.New("password must not be blank")
	ErrEmptyUpdate   = errors.New("no fields to update")
)

// UserUpdate carries the optional fields of a partial user update with the
// password still in plaintext. Nil means "leave unchanged".
type UserUpdate struct {
	Username *string
	Password *string
	IsAdmin  *bool
}

// UserService owns user CRUD. Passwords come in as plaintext and leave the
// service only as argon2id hashes.
type UserService struct {
	Store store.Store
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().List(ctx)
}

// Create hashes the password and inserts a new user. A duplicate username
// surfaces as store.ErrAlreadyExists.
func (s *UserService) Create(ctx context.Context, username, password string, isAdmin bool) (domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return domain.User{}, ErrBlankUsername
	}
	if strings.TrimSpace(password) == "" {
		return domain.User{}, ErrBlankPassword
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
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().Create(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Update applies a partial update. Only provided fields change; a provided
// password is re-hashed. Tokens already issued keep their original claims.
func (s *UserService) Update(ctx context.Context, id string, upd UserUpdate) error {
	if upd.Username == nil && upd.Password == nil && upd.IsAdmin == nil {
		return ErrEmptyUpdate
	}
	if upd.Username != nil && strings.TrimSpace(*upd.Username) == "" {
		return ErrBlankUsername
	}
	if upd.Password != nil && strings.TrimSpace(*upd.Password) == "" {
		return ErrBlankPassword
	}

	patch := store.UserPatch{Username: upd.Username, IsAdmin: upd.IsAdmin}
	if upd.Password != nil {
		hash, err := cryptox.HashPassword(*upd.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	return s.Store.Users().Update(ctx, id, patch)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Store.Users().Delete(ctx, id)
}
