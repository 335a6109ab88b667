package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/google/uuid"
)

const noteColumns = `id::text, owner_id::text, title, tags, note_details, archived, created_at`

// List returns all notes of the owner, newest first.
func (s *PostgresStorage) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = $1 ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("postgres storage: list notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres storage: list notes: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres storage: list notes: %w", err)
	}
	return notes, nil
}

// Create stores a new note.
func (s *PostgresStorage) Create(ctx context.Context, ownerID string, fields domain.NoteFields) (domain.Note, error) {
	fields = fields.Normalize()
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO notes (id, owner_id, title, tags, note_details)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+noteColumns,
		uuid.NewString(), ownerID, fields.Title, fields.Tags.String(), fields.Details)
	note, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("postgres storage: create note: %w", err)
	}
	return note, nil
}

// Update replaces the editable fields of a note.
func (s *PostgresStorage) Update(ctx context.Context, ownerID, id string, fields domain.NoteFields) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	fields = fields.Normalize()
	row := s.db.QueryRowContext(ctx,
		`UPDATE notes SET title = $1, tags = $2, note_details = $3, updated_at = now()
		 WHERE id = $4 AND owner_id = $5
		 RETURNING `+noteColumns,
		fields.Title, fields.Tags.String(), fields.Details, id, ownerID)
	note, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("postgres storage: update note %s: %w", id, notFound(err))
	}
	return note, nil
}

// Delete removes a note and returns it.
func (s *PostgresStorage) Delete(ctx context.Context, ownerID, id string) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2 RETURNING `+noteColumns, id, ownerID)
	note, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("postgres storage: delete note %s: %w", id, notFound(err))
	}
	return note, nil
}

// SetArchived sets the archived flag of a note.
func (s *PostgresStorage) SetArchived(ctx context.Context, ownerID, id string, archived bool) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`UPDATE notes SET archived = $1, updated_at = now()
		 WHERE id = $2 AND owner_id = $3
		 RETURNING `+noteColumns,
		archived, id, ownerID)
	note, err := scanNote(row)
	if err != nil {
		return domain.Note{}, fmt.Errorf("postgres storage: set archived %s: %w", id, notFound(err))
	}
	return note, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (domain.Note, error) {
	var (
		note domain.Note
		tags string
	)
	if err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &tags, &note.Details, &note.Archived, &note.CreatedAt); err != nil {
		return domain.Note{}, err
	}
	note.Tags = domain.ParseTags(tags)
	note.CreatedAt = note.CreatedAt.UTC()
	return note, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNoteNotFound
	}
	return err
}

// validateID rejects IDs that cannot be a UUID, which Postgres would refuse with a cast error.
func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("postgres storage: %w", domain.ErrInvalidNoteID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("postgres storage: %w", domain.ErrNoteNotFound)
	}
	return nil
}
