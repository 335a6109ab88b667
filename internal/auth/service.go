// Package auth manages local accounts and the signed session that scopes
// note repository calls to one owner.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
	"github.com/cristianoliveira/notedeck/internal/logging"
)

// ErrInvalidCredentials is returned for an unknown email or wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Provider resolves the owner of the current session.
type Provider interface {
	// OwnerID returns the signed in user's ID or an auth error.
	OwnerID(ctx context.Context) (string, error)
}

// Session describes the signed in user.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Service registers users, signs them in and resolves the current owner.
type Service struct {
	users   domain.CredentialStore
	tokens  *TokenIssuer
	session *SessionFile
}

// NewService returns a service over users that keeps its token in session.
func NewService(users domain.CredentialStore, tokens *TokenIssuer, session *SessionFile) *Service {
	return &Service{users: users, tokens: tokens, session: session}
}

// NewServiceFromConfig builds a service with the configured secret, TTL and session path.
func NewServiceFromConfig(users domain.CredentialStore) (*Service, error) {
	secret, err := LoadSecret()
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(config.GetInt("session_ttl_hours", 168)) * time.Hour
	return NewService(users, NewTokenIssuer(secret, ttl), NewSessionFile(DefaultSessionPath())), nil
}

// SessionPath returns where the session token is stored.
func (s *Service) SessionPath() string { return s.session.Path() }

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, email, password, confirm string) (Session, error) {
	email = normalizeEmail(email)
	if err := ValidateEmail("signup", email); err != nil {
		return Session{}, err
	}
	if err := ValidateNewPassword("signup", password, confirm); err != nil {
		return Session{}, err
	}

	hash, salt, err := HashPassword(password)
	if err != nil {
		return Session{}, apperrors.Persistence("signup", err)
	}
	user, err := s.users.CreateUser(ctx, domain.User{Email: email, PasswordHash: hash, Salt: salt})
	if errors.Is(err, domain.ErrUserExists) {
		return Session{}, apperrors.Validation("signup", "email", "An account with this email already exists")
	}
	if err != nil {
		return Session{}, apperrors.Persistence("signup", err)
	}
	logging.Info("account created", "user_id", user.ID)
	return s.startSession("signup", user)
}

// Login verifies credentials and stores a new session token.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return Session{}, apperrors.Validation("login", "email", "Email is required")
	}
	if password == "" {
		return Session{}, apperrors.Validation("login", "password", "Password is required")
	}

	user, err := s.users.UserByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return Session{}, &apperrors.Error{Op: "login", Kind: apperrors.KindAuth, Message: ErrInvalidCredentials.Error(), Err: ErrInvalidCredentials}
	}
	if err != nil {
		return Session{}, apperrors.Persistence("login", err)
	}
	if !VerifyPassword(password, user.PasswordHash, user.Salt) {
		logging.Warn("failed sign in", "user_id", user.ID)
		return Session{}, &apperrors.Error{Op: "login", Kind: apperrors.KindAuth, Message: ErrInvalidCredentials.Error(), Err: ErrInvalidCredentials}
	}
	return s.startSession("login", user)
}

// Logout removes the stored session.
func (s *Service) Logout() error {
	if err := s.session.Remove(); err != nil {
		return apperrors.Persistence("logout", err)
	}
	return nil
}

// Current returns the active session or an auth error.
func (s *Service) Current() (Session, error) {
	token, err := s.session.Read()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return Session{}, apperrors.Auth("session", err)
		}
		return Session{}, apperrors.Persistence("session", err)
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Session{}, apperrors.Auth("session", err)
	}
	sess := Session{UserID: claims.UserID, Email: claims.Email}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// OwnerID returns the user ID of the active session.
func (s *Service) OwnerID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sess, err := s.Current()
	if err != nil {
		return "", err
	}
	return sess.UserID, nil
}

// ChangePassword replaces the password of the signed in user after checking
// the current one. The session stays valid.
func (s *Service) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if err := ValidatePasswordChange(current, next, confirm); err != nil {
		return err
	}
	sess, err := s.Current()
	if err != nil {
		return err
	}
	user, err := s.users.UserByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.Auth("change_password", err)
	}
	if err != nil {
		return apperrors.Persistence("change_password", err)
	}
	if !VerifyPassword(current, user.PasswordHash, user.Salt) {
		return apperrors.Validation("change_password", "current_password", "Current password is incorrect")
	}
	hash, salt, err := HashPassword(next)
	if err != nil {
		return apperrors.Persistence("change_password", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash, salt); err != nil {
		return apperrors.Persistence("change_password", err)
	}
	logging.Info("password changed", "user_id", user.ID)
	return nil
}

func (s *Service) startSession(op string, user domain.User) (Session, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return Session{}, apperrors.Persistence(op, err)
	}
	if err := s.session.Write(token); err != nil {
		return Session{}, apperrors.Persistence(op, err)
	}
	return s.Current()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
