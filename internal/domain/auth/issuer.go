package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimSet is the identity payload embedded in both token kinds.
type ClaimSet struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
}

type tokenClaims struct {
	UserID string `json:"userId"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

// IssuerConfig holds the two independent (secret, lifetime) pairs.
type IssuerConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessLifetime  time.Duration
	RefreshLifetime time.Duration
}

// Issuer creates and verifies HS256-signed access and refresh tokens.
// The two kinds share the claim shape but nothing else: separate secrets,
// separate lifetimes, never interchangeable.
type Issuer struct {
	config IssuerConfig
}

func NewIssuer(cfg IssuerConfig) *Issuer {
	return &Issuer{config: cfg}
}

// IssueAccess signs a short-lived access token for the claim set.
func (i *Issuer) IssueAccess(claims ClaimSet) (string, error) {
	return i.sign(claims, []byte(i.config.AccessSecret), i.config.AccessLifetime)
}

// IssueRefresh signs a long-lived refresh token for the claim set.
func (i *Issuer) IssueRefresh(claims ClaimSet) (string, error) {
	return i.sign(claims, []byte(i.config.RefreshSecret), i.config.RefreshLifetime)
}

func (i *Issuer) sign(claims ClaimSet, secret []byte, lifetime time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Login:  claims.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	})
	return token.SignedString(secret)
}

// VerifyAccess validates an access token and returns its claim set.
func (i *Issuer) VerifyAccess(tokenStr string) (*ClaimSet, error) {
	return i.verify(tokenStr, []byte(i.config.AccessSecret))
}

// VerifyRefresh validates a refresh token and returns its claim set.
func (i *Issuer) VerifyRefresh(tokenStr string) (*ClaimSet, error) {
	return i.verify(tokenStr, []byte(i.config.RefreshSecret))
}

// verify rejects wrong algorithms, wrong secrets, corrupted payloads and
// expired tokens. Every failure surfaces as jwt's parse error; callers
// collapse them to a single signal.
func (i *Issuer) verify(tokenStr string, secret []byte) (*ClaimSet, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &ClaimSet{UserID: claims.UserID, Login: claims.Login}, nil
}
