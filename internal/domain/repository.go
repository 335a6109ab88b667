package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoteNotFound is returned when a note does not exist for the owner.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidNoteID is returned when a note ID is empty or malformed.
	ErrInvalidNoteID = errors.New("invalid note ID")

	// ErrUserNotFound is returned when no account matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
)

// NoteRepository defines the interface for note persistence. Every call is
// scoped to the owner; notes of other owners behave as if they did not exist.
type NoteRepository interface {
	// List returns all notes of the owner, newest first.
	List(ctx context.Context, ownerID string) ([]Note, error)

	// Create stores a new note and returns the persisted record.
	Create(ctx context.Context, ownerID string, fields NoteFields) (Note, error)

	// Update replaces the editable fields of a note.
	Update(ctx context.Context, ownerID, id string, fields NoteFields) (Note, error)

	// Delete removes a note and returns the removed record.
	Delete(ctx context.Context, ownerID, id string) (Note, error)

	// SetArchived sets the archived flag of a note.
	SetArchived(ctx context.Context, ownerID, id string, archived bool) (Note, error)
}

// User is a local account.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}

// CredentialStore persists local accounts.
type CredentialStore interface {
	// CreateUser stores a new account. It fails with ErrUserExists for a taken email.
	CreateUser(ctx context.Context, user User) (User, error)

	// UserByEmail looks up an account by email.
	UserByEmail(ctx context.Context, email string) (User, error)

	// UserByID looks up an account by ID.
	UserByID(ctx context.Context, id string) (User, error)

	// UpdatePassword replaces the password hash and salt of an account.
	UpdatePassword(ctx context.Context, id string, hash, salt []byte) error
}

// Store is a backend holding both notes and accounts.
type Store interface {
	NoteRepository
	CredentialStore
	Close() error
}
