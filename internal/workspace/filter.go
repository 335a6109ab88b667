package workspace

import (
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/search"
)

// FilterState holds the view restrictions. Empty strings mean unset.
type FilterState struct {
	Tag   string
	Query string
}

// SetTag restricts the view to one tag. The search query is left alone.
func (f *FilterState) SetTag(tag string) {
	f.Tag = strings.TrimSpace(tag)
}

// SetQuery sets the search query and always clears the tag filter.
// A blank query clears the search.
func (f *FilterState) SetQuery(query string) {
	f.Tag = ""
	if strings.TrimSpace(query) == "" {
		f.Query = ""
		return
	}
	f.Query = query
}

// Clear unsets both restrictions.
func (f *FilterState) Clear() {
	*f = FilterState{}
}

// searchOptions are the matcher options of note search: titles and details,
// ignoring case.
var searchOptions = []search.Option{
	search.WithCaseInsensitive(true),
	search.WithFields(search.FieldTitle, search.FieldDetails),
}

// DefaultSearchProvider matches lower-cased titles and details.
func DefaultSearchProvider() search.Provider {
	return search.NewSubstringProvider(searchOptions...)
}

// NewSearchProvider returns the named matcher configured for note search.
func NewSearchProvider(name string) (search.Provider, error) {
	return search.New(name, searchOptions...)
}

// Visible derives the list to show. A tag filter wins over a search query;
// without either, the base list of route is shown.
func Visible(store *Store, f FilterState, route domain.Route, provider search.Provider) []domain.Note {
	switch {
	case f.Tag != "":
		return ByTag(store.All(), f.Tag)
	case f.Query != "":
		return BySearch(store.All(), f.Query, provider)
	default:
		return store.Base(route)
	}
}

// ByTag returns the notes tagged exactly tag.
func ByTag(notes []domain.Note, tag string) []domain.Note {
	out := make([]domain.Note, 0)
	for _, n := range notes {
		if n.Tags.Contains(tag) {
			out = append(out, n)
		}
	}
	return out
}

// BySearch returns the notes matching query. When any tag among notes
// contains the query, every note matches.
func BySearch(notes []domain.Note, query string, provider search.Provider) []domain.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if anyTagContains(notes, q) {
		return clone(notes)
	}
	if provider == nil {
		provider = DefaultSearchProvider()
	}
	out := make([]domain.Note, 0)
	for _, n := range notes {
		if provider.Match(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func anyTagContains(notes []domain.Note, q string) bool {
	for _, n := range notes {
		for _, t := range n.Tags {
			if strings.Contains(strings.ToLower(t), q) {
				return true
			}
		}
	}
	return false
}
