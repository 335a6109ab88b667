package search

import (
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
)

// TokenProvider splits the query on whitespace and requires every token to
// match at least one field. The special tokens "archived" and "active"
// restrict matches by archive state.
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all text tokens match and the state filter passes.
func (p *TokenProvider) Match(note domain.Note, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	archivedOnly, activeOnly := false, false
	var text []string
	for _, token := range tokens {
		switch strings.ToLower(token) {
		case "archived":
			archivedOnly = true
		case "active":
			activeOnly = true
		default:
			if p.opts.CaseInsensitive {
				token = strings.ToLower(token)
			}
			text = append(text, token)
		}
	}
	// Both together cancel out.
	if archivedOnly && activeOnly {
		archivedOnly, activeOnly = false, false
	}
	if archivedOnly && !note.Archived || activeOnly && note.Archived {
		return false
	}

	for _, token := range text {
		if !p.matchToken(note, token) {
			return false
		}
	}
	return true
}

func (p *TokenProvider) matchToken(note domain.Note, token string) bool {
	for _, field := range p.opts.Fields {
		for _, value := range fieldValues(note, field) {
			if p.opts.CaseInsensitive {
				value = strings.ToLower(value)
			}
			if value != "" && strings.Contains(value, token) {
				return true
			}
		}
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
