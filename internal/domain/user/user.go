package user

import "context"

// User is the stored account record. Password holds the bcrypt hash and
// never leaves this package in a response.
type User struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Password  string `json:"-"`
	Version   int    `json:"version"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Public is the outward representation of a user: User minus the hash.
type Public struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Version   int    `json:"version"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func (u *User) Public() *Public {
	return &Public{
		ID:        u.ID,
		Login:     u.Login,
		Version:   u.Version,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Store is the credential store contract. FindByID and FindByLogin return
// (nil, nil) when no record matches; login uniqueness is enforced by the
// callers, not the store.
type Store interface {
	FindAll(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	Insert(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
