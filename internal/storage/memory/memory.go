// Package memory provides an in-process note and account store.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/google/uuid"
)

// Storage implements domain.Store in memory. It is safe for concurrent use.
type Storage struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
	users map[string]domain.User
	now   func() time.Time
}

var _ domain.Store = (*Storage)(nil)

// Option configures a Storage.
type Option func(*Storage)

// WithClock sets the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

// New returns an empty store.
func New(opts ...Option) *Storage {
	s := &Storage{
		notes: make(map[string]domain.Note),
		users: make(map[string]domain.User),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close is a no-op.
func (s *Storage) Close() error { return nil }

// Seed inserts notes as-is, keeping their IDs and timestamps.
func (s *Storage) Seed(notes ...domain.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range notes {
		n.Tags = n.Tags.Clone()
		s.notes[n.ID] = n
	}
}

// List returns all notes of the owner, newest first.
func (s *Storage) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Note
	for _, n := range s.notes {
		if n.OwnerID == ownerID {
			n.Tags = n.Tags.Clone()
			out = append(out, n)
		}
	}
	domain.SortNewestFirst(out)
	return out, nil
}

// Create stores a new note.
func (s *Storage) Create(ctx context.Context, ownerID string, fields domain.NoteFields) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}
	fields = fields.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := domain.Note{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     fields.Title,
		Tags:      fields.Tags,
		Details:   fields.Details,
		CreatedAt: s.now(),
	}
	s.notes[n.ID] = n
	n.Tags = n.Tags.Clone()
	return n, nil
}

// Update replaces the editable fields of a note.
func (s *Storage) Update(ctx context.Context, ownerID, id string, fields domain.NoteFields) (domain.Note, error) {
	return s.mutate(ctx, "update note", ownerID, id, func(n *domain.Note) {
		fields = fields.Normalize()
		n.Title, n.Tags, n.Details = fields.Title, fields.Tags, fields.Details
	})
}

// SetArchived sets the archived flag of a note.
func (s *Storage) SetArchived(ctx context.Context, ownerID, id string, archived bool) (domain.Note, error) {
	return s.mutate(ctx, "set archived", ownerID, id, func(n *domain.Note) {
		n.Archived = archived
	})
}

// Delete removes a note and returns it.
func (s *Storage) Delete(ctx context.Context, ownerID, id string) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}
	if strings.TrimSpace(id) == "" {
		return domain.Note{}, fmt.Errorf("memory storage: %w", domain.ErrInvalidNoteID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return domain.Note{}, fmt.Errorf("memory storage: delete note %s: %w", id, domain.ErrNoteNotFound)
	}
	delete(s.notes, id)
	return n, nil
}

func (s *Storage) mutate(ctx context.Context, op, ownerID, id string, fn func(*domain.Note)) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}
	if strings.TrimSpace(id) == "" {
		return domain.Note{}, fmt.Errorf("memory storage: %w", domain.ErrInvalidNoteID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok || n.OwnerID != ownerID {
		return domain.Note{}, fmt.Errorf("memory storage: %s %s: %w", op, id, domain.ErrNoteNotFound)
	}
	fn(&n)
	s.notes[id] = n
	n.Tags = n.Tags.Clone()
	return n, nil
}

// CreateUser stores a new account.
func (s *Storage) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.User{}, fmt.Errorf("memory storage: create user: %w", domain.ErrUserExists)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = s.now()
	s.users[user.ID] = user
	return user, nil
}

// UserByEmail looks up an account by email.
func (s *Storage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// UserByID looks up an account by ID.
func (s *Storage) UserByID(ctx context.Context, id string) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// UpdatePassword replaces the password hash and salt of an account.
func (s *Storage) UpdatePassword(ctx context.Context, id string, hash, salt []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("memory storage: update password: %w", domain.ErrUserNotFound)
	}
	u.PasswordHash, u.Salt = hash, salt
	s.users[id] = u
	return nil
}
