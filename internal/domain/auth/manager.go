package auth

import (
	"context"

	"melodia-server-go/internal/domain/user"
	"melodia-server-go/internal/platform/logging"
)

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Manager orchestrates the session lifecycle: signup, login, refresh and
// access-token validation. It is the only writer of the refresh Ledger.
type Manager struct {
	users  *user.Service
	issuer *Issuer
	ledger Ledger
	logger *logging.Logger
}

func NewManager(users *user.Service, issuer *Issuer, ledger Ledger, logger *logging.Logger) *Manager {
	return &Manager{
		users:  users,
		issuer: issuer,
		ledger: ledger,
		logger: logger,
	}
}

// Signup creates an account after checking login uniqueness. The check
// lives here, not in the store.
func (m *Manager) Signup(ctx context.Context, login, password string) (*user.Public, error) {
	existing, err := m.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	created, err := m.users.Create(ctx, login, password)
	if err != nil {
		return nil, err
	}

	m.logger.InfoTag("AUTH", "account created for login %s", login)
	return created, nil
}

// Login verifies credentials and issues a fresh token pair. An unknown
// login and a wrong password are indistinguishable from outside. Earlier
// sessions of the same user stay valid.
func (m *Manager) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	u, err := m.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if !m.users.VerifyPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := m.issuePair(ClaimSet{UserID: u.ID, Login: u.Login})
	if err != nil {
		return nil, err
	}

	if err := m.ledger.Add(ctx, pair.RefreshToken); err != nil {
		return nil, err
	}

	m.logger.InfoTag("AUTH", "login succeeded for user %s", u.ID)
	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair, rotating the old
// token out. A token that fails verification is revoked before the error
// is returned so it can never be retried.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrMissingToken
	}

	live, err := m.ledger.Contains(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := m.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		if revokeErr := m.ledger.Revoke(ctx, refreshToken); revokeErr != nil {
			m.logger.ErrorTag("AUTH", "failed to revoke rejected refresh token: %v", revokeErr)
		}
		return nil, ErrInvalidOrExpiredRefreshToken
	}

	// reload the identity; the account may have been deleted since issue
	u, err := m.users.Reload(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		if revokeErr := m.ledger.Revoke(ctx, refreshToken); revokeErr != nil {
			m.logger.ErrorTag("AUTH", "failed to revoke orphaned refresh token: %v", revokeErr)
		}
		return nil, ErrUserNotFound
	}

	// mint from the stored login, not the token's copy
	pair, err := m.issuePair(ClaimSet{UserID: u.ID, Login: u.Login})
	if err != nil {
		return nil, err
	}

	rotated, err := m.ledger.Rotate(ctx, refreshToken, pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// a concurrent refresh won the race with this same token
		return nil, ErrInvalidRefreshToken
	}

	m.logger.InfoTag("AUTH", "refresh token rotated for user %s", u.ID)
	return pair, nil
}

// ValidateAccessToken verifies signature and expiry against the access
// secret. The ledger is never consulted: access tokens are stateless and
// expire on their own.
func (m *Manager) ValidateAccessToken(token string) (*ClaimSet, error) {
	claims, err := m.issuer.VerifyAccess(token)
	if err != nil {
		return nil, ErrInvalidOrExpiredAccessToken
	}
	return claims, nil
}

func (m *Manager) issuePair(claims ClaimSet) (*TokenPair, error) {
	accessToken, err := m.issuer.IssueAccess(claims)
	if err != nil {
		return nil, err
	}
	refreshToken, err := m.issuer.IssueRefresh(claims)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
