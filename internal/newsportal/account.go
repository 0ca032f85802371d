package newsportal

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
	"github.com/daniilsolovey/news-management/internal/query"
	"golang.org/x/crypto/bcrypt"
)

func (m *Manager) Accounts(ctx context.Context, q AccountQuery) (query.Page[Account], error) {
	defer m.observe(entityAccount, time.Now())

	snap, err := m.snapshot(ctx)
	if err != nil {
		return query.Page[Account]{}, fmt.Errorf("failed to query accounts: %w", err)
	}

	var filters []query.Filter[Account]
	if q.Role != nil {
		filters = append(filters, query.Eq(func(a Account) Role { return a.AccountRole() }, *q.Role))
	}

	page := m.accounts.Query(slices.Values(snap.Accounts()), listing(q.Paging, filters...))
	m.logger.Debug("accounts queried", "search", q.Search, "total", page.Total, "page", page.Page)

	return page, nil
}

func (m *Manager) Account(ctx context.Context, id int) (*Account, error) {
	row, err := m.store.AccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	} else if row == nil {
		return nil, notFound(entityAccount, id)
	}

	a := NewAccount(*row)
	return &a, nil
}

func (m *Manager) CreateAccount(ctx context.Context, in AccountInput) (a *Account, err error) {
	m.logger.Info("creating account", "email", in.Email, "role", in.Role)
	defer func() { m.done(entityAccount, "create", accountID(a), err) }()

	if err = validateAccount(in); err != nil {
		return nil, err
	}
	if err = required(entityAccount, "password", in.Password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var row db.Account
	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if err := uniqueEmail(in.Email, 0, snap); err != nil {
			return err
		}

		row = db.Account{
			Name:     strings.TrimSpace(in.Name),
			Email:    strings.TrimSpace(in.Email),
			Role:     int(in.Role),
			Password: hash,
		}
		return s.CreateAccount(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	created := NewAccount(row)
	return &created, nil
}

// UpdateAccount changes the profile of an account. The password is kept.
func (m *Manager) UpdateAccount(ctx context.Context, id int, in AccountInput) (a *Account, err error) {
	m.logger.Info("updating account", "id", id, "email", in.Email, "role", in.Role)
	defer func() { m.done(entityAccount, "update", id, err) }()

	if err = validateAccount(in); err != nil {
		return nil, err
	}

	var row db.Account
	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		current := snap.account(id)
		if current == nil {
			return notFound(entityAccount, id)
		}
		if err := uniqueEmail(in.Email, id, snap); err != nil {
			return err
		}

		row = *current
		row.Name = strings.TrimSpace(in.Name)
		row.Email = strings.TrimSpace(in.Email)
		row.Role = int(in.Role)
		return s.UpdateAccount(ctx, &row)
	})
	if err != nil {
		return nil, err
	}

	updated := NewAccount(row)
	return &updated, nil
}

// DeleteAccount removes an account that authored no articles. Articles it
// last updated keep no editor.
func (m *Manager) DeleteAccount(ctx context.Context, id int) (err error) {
	m.logger.Info("deleting account", "id", id)
	defer func() { m.done(entityAccount, "delete", id, err) }()

	return m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if snap.account(id) == nil {
			return notFound(entityAccount, id)
		}
		if err := guard.AccountDelete(id, snap.articleAuthorIDs()); err != nil {
			return err
		}
		return s.DeleteAccount(ctx, id)
	})
}

func validateAccount(in AccountInput) error {
	if err := required(entityAccount, "account name", in.Name); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return guard.InvalidOperation(entityAccount, guard.ReasonInvalid, "invalid email address %q", in.Email)
	}
	if !in.Role.Valid() {
		return guard.InvalidOperation(entityAccount, guard.ReasonInvalid, "invalid account role %d", in.Role)
	}
	return nil
}

func uniqueEmail(email string, selfID int, snap *snapshot) error {
	return guard.Unique(entityAccount, "email", email, selfID, snap.accounts,
		func(a db.Account) int { return a.ID }, func(a db.Account) string { return a.Email })
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func accountID(a *Account) int {
	if a == nil {
		return 0
	}
	return a.ID
}
