package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/storage/dbx"
	"github.com/google/uuid"
)

// CreateUser stores a new account.
func (s *SQLiteStorage) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = utcNow()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, user.Email).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return domain.ErrUserExists
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (id, email, password_hash, salt, created_at) VALUES (?, ?, ?, ?, ?)`,
			user.ID, user.Email, user.PasswordHash, user.Salt, dbx.FormatTime(user.CreatedAt))
		return err
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite storage: create user: %w", err)
	}
	return user, nil
}

// UserByEmail looks up an account by email.
func (s *SQLiteStorage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.queryUser(ctx, `email = ?`, strings.ToLower(strings.TrimSpace(email)))
}

// UserByID looks up an account by ID.
func (s *SQLiteStorage) UserByID(ctx context.Context, id string) (domain.User, error) {
	return s.queryUser(ctx, `id = ?`, id)
}

// UpdatePassword replaces the password hash and salt of an account.
func (s *SQLiteStorage) UpdatePassword(ctx context.Context, id string, hash, salt []byte) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password_hash = ?, salt = ? WHERE id = ?`, hash, salt, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("sqlite storage: update password: %w", domain.ErrUserNotFound)
	}
	return nil
}

func (s *SQLiteStorage) queryUser(ctx context.Context, where string, arg any) (domain.User, error) {
	var (
		user      domain.User
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, salt, created_at FROM users WHERE `+where, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Salt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite storage: get user: %w", err)
	}
	if user.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return domain.User{}, fmt.Errorf("sqlite storage: get user: %w", err)
	}
	return user, nil
}
