// Package domain provides the note model, its value objects and the
// repository contracts that storage implementations follow.
package domain

import (
	"sort"
	"strings"
	"time"

	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
)

// TagSeparator joins tags when a note is stored or transmitted.
const TagSeparator = ","

// Note is a titled, tagged, timestamped text record owned by one user.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Tags      Tags
	Details   string
	Archived  bool
	CreatedAt time.Time
}

// IsZero reports whether n is the empty placeholder used while creating a note.
func (n Note) IsZero() bool {
	return n.ID == ""
}

// Fields returns the editable part of n.
func (n Note) Fields() NoteFields {
	return NoteFields{Title: n.Title, Tags: n.Tags.Clone(), Details: n.Details}
}

// Tags is an ordered set of non-empty, trimmed tag tokens.
type Tags []string

// ParseTags splits a delimited tag string. Tokens are trimmed, empty tokens are
// dropped and duplicates keep their first position.
func ParseTags(s string) Tags {
	return NormalizeTags(strings.Split(s, TagSeparator))
}

// NormalizeTags applies the ParseTags rules to already split tokens.
func NormalizeTags(tokens []string) Tags {
	var out Tags
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// String returns the stored representation of the tags.
func (t Tags) String() string {
	return strings.Join(t, TagSeparator)
}

// Contains reports whether tag is one of t. Matching is exact and case-sensitive.
func (t Tags) Contains(tag string) bool {
	for _, existing := range t {
		if existing == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy of t.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// NoteFields is the payload of create and update operations.
type NoteFields struct {
	Title   string
	Tags    Tags
	Details string
}

// Normalize trims the title and normalizes tags.
func (f NoteFields) Normalize() NoteFields {
	return NoteFields{
		Title:   strings.TrimSpace(f.Title),
		Tags:    NormalizeTags(f.Tags),
		Details: f.Details,
	}
}

// Validate reports a validation error when the fields cannot be saved.
func (f NoteFields) Validate(op string) error {
	if strings.TrimSpace(f.Title) == "" {
		return apperrors.Validation(op, "title", "Title is required")
	}
	for _, tag := range f.Tags {
		if strings.Contains(tag, TagSeparator) {
			return apperrors.Validation(op, "tags", "Tags cannot contain commas")
		}
	}
	return nil
}

// SortNewestFirst orders notes by descending creation time. Ties keep their
// relative order.
func SortNewestFirst(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}
