package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/storage/dbx"
	"github.com/google/uuid"
)

const noteColumns = `id, owner_id, title, tags, note_details, archived, created_at`

// List returns all notes of the owner, newest first.
func (s *SQLiteStorage) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: list notes: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list notes: %w", err)
	}
	return notes, nil
}

// Create stores a new note.
func (s *SQLiteStorage) Create(ctx context.Context, ownerID string, fields domain.NoteFields) (domain.Note, error) {
	fields = fields.Normalize()
	now := utcNow()
	note := domain.Note{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     fields.Title,
		Tags:      fields.Tags,
		Details:   fields.Details,
		CreatedAt: now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, owner_id, title, tags, note_details, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		note.ID, note.OwnerID, note.Title, note.Tags.String(), note.Details,
		dbx.FormatTime(now), dbx.FormatTime(now))
	if err != nil {
		return domain.Note{}, fmt.Errorf("sqlite storage: create note: %w", err)
	}
	return note, nil
}

// Update replaces the editable fields of a note.
func (s *SQLiteStorage) Update(ctx context.Context, ownerID, id string, fields domain.NoteFields) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	fields = fields.Normalize()
	var note domain.Note
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET title = ?, tags = ?, note_details = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
			fields.Title, fields.Tags.String(), fields.Details, dbx.FormatTime(utcNow()), id, ownerID)
		if err != nil {
			return err
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		note, err = getNote(ctx, tx, ownerID, id)
		return err
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("sqlite storage: update note %s: %w", id, err)
	}
	return note, nil
}

// Delete removes a note and returns it.
func (s *SQLiteStorage) Delete(ctx context.Context, ownerID, id string) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	var note domain.Note
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		note, err = getNote(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
		return err
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("sqlite storage: delete note %s: %w", id, err)
	}
	return note, nil
}

// SetArchived sets the archived flag of a note.
func (s *SQLiteStorage) SetArchived(ctx context.Context, ownerID, id string, archived bool) (domain.Note, error) {
	if err := validateID(id); err != nil {
		return domain.Note{}, err
	}
	var note domain.Note
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE notes SET archived = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
			dbx.BoolToInt(archived), dbx.FormatTime(utcNow()), id, ownerID)
		if err != nil {
			return err
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		note, err = getNote(ctx, tx, ownerID, id)
		return err
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("sqlite storage: set archived %s: %w", id, err)
	}
	return note, nil
}

func getNote(ctx context.Context, q dbx.DBTX, ownerID, id string) (domain.Note, error) {
	row := q.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ? AND owner_id = ?`, id, ownerID)
	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Note{}, domain.ErrNoteNotFound
	}
	return note, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (domain.Note, error) {
	var (
		note      domain.Note
		tags      string
		archived  int
		createdAt string
	)
	if err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &tags, &note.Details, &archived, &createdAt); err != nil {
		return domain.Note{}, err
	}
	created, err := dbx.ParseTime(createdAt)
	if err != nil {
		return domain.Note{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	note.Tags = domain.ParseTags(tags)
	note.Archived = archived != 0
	note.CreatedAt = created
	return note, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("sqlite storage: %w", domain.ErrInvalidNoteID)
	}
	return nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
