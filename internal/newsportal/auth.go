package newsportal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daniilsolovey/news-management/internal/metrics"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned by ParseToken for a malformed, expired or
	// foreign token.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the access token claims. Subject holds the account id.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}

// Register creates an account from a public registration.
func (m *Manager) Register(ctx context.Context, r Registration) (*Account, error) {
	return m.CreateAccount(ctx, AccountInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Password: r.Password,
	})
}

// Login checks credentials and issues an access token and a refresh token.
func (m *Manager) Login(ctx context.Context, c Credentials) (*AuthResult, error) {
	row, err := m.store.AccountByEmail(ctx, strings.TrimSpace(c.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	if row == nil || bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(c.Password)) != nil {
		metrics.RecordLogin(false)
		m.logger.Warn("login failed", "email", c.Email)
		return nil, ErrInvalidCredentials
	}

	account := NewAccount(*row)
	now := m.now()
	expiresAt := now.Add(m.auth.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: account.Email,
		Role:  account.AccountRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(m.auth.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	metrics.RecordLogin(true)
	m.logger.Info("login succeeded", "id", account.ID)

	return &AuthResult{
		Account:      account,
		AccessToken:  signed,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseToken validates an access token and returns the account id it was
// issued for.
func (m *Manager) ParseToken(tokenString string) (int, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.auth.Secret), nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return id, nil
}
