package postgres

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
func (s *PostgresStorage) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, user.Email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrUserExists
		}
		return tx.QueryRowContext(ctx,
			`INSERT INTO users (id, email, password_hash, salt) VALUES ($1, $2, $3, $4) RETURNING created_at`,
			user.ID, user.Email, user.PasswordHash, user.Salt).Scan(&user.CreatedAt)
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("postgres storage: create user: %w", err)
	}
	return user, nil
}

// UserByEmail looks up an account by email.
func (s *PostgresStorage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.queryUser(ctx, `email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

// UserByID looks up an account by ID.
func (s *PostgresStorage) UserByID(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return s.queryUser(ctx, `id = $1`, id)
}

// UpdatePassword replaces the password hash and salt of an account.
func (s *PostgresStorage) UpdatePassword(ctx context.Context, id string, hash, salt []byte) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("postgres storage: update password: %w", domain.ErrUserNotFound)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password_hash = $1, salt = $2 WHERE id = $3`, hash, salt, id)
	if err != nil {
		return fmt.Errorf("postgres storage: update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("postgres storage: update password: %w", domain.ErrUserNotFound)
	}
	return nil
}

func (s *PostgresStorage) queryUser(ctx context.Context, where string, arg any) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id::text, email, password_hash, salt, created_at FROM users WHERE `+where, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Salt, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("postgres storage: get user: %w", err)
	}
	return user, nil
}
