package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"melodia-server-go/internal/platform/errors"
)

// Service implements account management on top of a credential Store.
// Login uniqueness is deliberately NOT checked here; the session manager
// owns that invariant during signup.
type Service struct {
	store  Store
	hasher *Hasher
}

func NewService(store Store, hasher *Hasher) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]*Public, error) {
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.find_all", "failed to list users", err)
	}

	out := make([]*Public, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*Public, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.find_by_id", "failed to load user", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u.Public(), nil
}

// FindByLogin returns the full record, hash included, for the session
// manager. (nil, nil) means no such login.
func (s *Service) FindByLogin(ctx context.Context, login string) (*User, error) {
	u, err := s.store.FindByLogin(ctx, login)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.find_by_login", "failed to load user", err)
	}
	return u, nil
}

// Reload fetches the full record by id for token refresh. (nil, nil) means
// the account no longer exists.
func (s *Service) Reload(ctx context.Context, id string) (*User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.reload", "failed to load user", err)
	}
	return u, nil
}

// Create hashes the password and inserts a fresh record: new uuid,
// version 1, matching createdAt/updatedAt in milliseconds.
func (s *Service) Create(ctx context.Context, login, password string) (*Public, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(errors.KindDomain, "user.create", "failed to hash password", err)
	}

	now := time.Now().UnixMilli()
	u := &User{
		ID:        uuid.NewString(),
		Login:     login,
		Password:  hash,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, u); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.create", "failed to insert user", err)
	}
	return u.Public(), nil
}

// UpdatePassword verifies the old password, stores a new hash, bumps the
// record version and updatedAt.
func (s *Service) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*Public, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.update_password", "failed to load user", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if !s.hasher.Verify(u.Password, oldPassword) {
		return nil, ErrWrongOldPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, errors.Wrap(errors.KindDomain, "user.update_password", "failed to hash password", err)
	}

	u.Password = hash
	u.Version++
	u.UpdatedAt = time.Now().UnixMilli()

	if err := s.store.Update(ctx, u); err != nil {
		return nil, errors.Wrap(errors.KindStorage, "user.update_password", "failed to update user", err)
	}
	return u.Public(), nil
}

// Delete removes the account. Outstanding refresh tokens are not revoked
// here; the refresh flow detects the missing identity lazily.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(errors.KindStorage, "user.delete", "failed to load user", err)
	}
	if u == nil {
		return ErrNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return errors.Wrap(errors.KindStorage, "user.delete", "failed to delete user", err)
	}
	return nil
}

// VerifyPassword exposes hash verification for the session manager.
func (s *Service) VerifyPassword(hash, password string) bool {
	return s.hasher.Verify(hash, password)
}
