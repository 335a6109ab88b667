// Package search provides the matching strategies used to filter notes.
// Strategies share the Provider interface so the workspace and the command
// line filter with the same code.
package search

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
)

// Searchable note fields.
const (
	FieldTitle   = "title"
	FieldDetails = "details"
	FieldTags    = "tags"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the note matches the search query.
	Match(note domain.Note, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: false,
		Fields:          []string{FieldTitle, FieldDetails, FieldTags},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "title", "details", "tags".
func WithFields(fields ...string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValues returns the values of field on note. Tags yield one value per tag.
func fieldValues(note domain.Note, field string) []string {
	switch field {
	case FieldTitle:
		return []string{note.Title}
	case FieldDetails:
		return []string{note.Details}
	case FieldTags:
		return note.Tags
	default:
		return nil
	}
}

// New returns the provider registered under name.
func New(name string, opts ...Option) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return NewSubstringProvider(opts...), nil
	case "token":
		return NewTokenProvider(opts...), nil
	case "regex":
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("search: unknown provider %q", name)
	}
}
