package workspace

import (
	"github.com/cristianoliveira/notedeck/internal/domain"
)

// Store holds the active and archived collections of the signed in user.
// A note ID is in at most one of them.
type Store struct {
	active   []domain.Note
	archived []domain.Note
}

// Reset empties both collections.
func (s *Store) Reset() {
	s.active = nil
	s.archived = nil
}

// Replace partitions notes by their archived flag, newest first.
func (s *Store) Replace(notes []domain.Note) {
	active := make([]domain.Note, 0, len(notes))
	archived := make([]domain.Note, 0)
	seen := make(map[string]bool, len(notes))
	for _, n := range notes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		if n.Archived {
			archived = append(archived, n)
		} else {
			active = append(active, n)
		}
	}
	domain.SortNewestFirst(active)
	domain.SortNewestFirst(archived)
	s.active = active
	s.archived = archived
}

// Active returns a copy of the active collection.
func (s *Store) Active() []domain.Note { return clone(s.active) }

// Archived returns a copy of the archived collection.
func (s *Store) Archived() []domain.Note { return clone(s.archived) }

// Base returns the collection backing route.
func (s *Store) Base(route domain.Route) []domain.Note {
	if route == domain.RouteArchived {
		return s.Archived()
	}
	return s.Active()
}

// All returns active followed by archived.
func (s *Store) All() []domain.Note {
	all := make([]domain.Note, 0, len(s.active)+len(s.archived))
	all = append(all, s.active...)
	return append(all, s.archived...)
}

// Len returns the number of notes held.
func (s *Store) Len() int { return len(s.active) + len(s.archived) }

// Find looks a note up by ID in either collection.
func (s *Store) Find(id string) (domain.Note, bool) {
	if i := indexOf(s.active, id); i >= 0 {
		return s.active[i], true
	}
	if i := indexOf(s.archived, id); i >= 0 {
		return s.archived[i], true
	}
	return domain.Note{}, false
}

// Prepend adds a newly created note in front of its collection.
func (s *Store) Prepend(n domain.Note) {
	s.Remove(n.ID)
	if n.Archived {
		s.archived = append([]domain.Note{n}, s.archived...)
		return
	}
	s.active = append([]domain.Note{n}, s.active...)
}

// ReplaceByID swaps in n wherever the note with its ID is held. If the
// archived flag changed, n moves to the other collection. It reports
// false when the note is not held.
func (s *Store) ReplaceByID(n domain.Note) bool {
	if i := indexOf(s.active, n.ID); i >= 0 {
		if !n.Archived {
			s.active[i] = n
			return true
		}
		s.Remove(n.ID)
		s.archived = append([]domain.Note{n}, s.archived...)
		domain.SortNewestFirst(s.archived)
		return true
	}
	if i := indexOf(s.archived, n.ID); i >= 0 {
		if n.Archived {
			s.archived[i] = n
			return true
		}
		s.Remove(n.ID)
		s.active = append([]domain.Note{n}, s.active...)
		domain.SortNewestFirst(s.active)
		return true
	}
	return false
}

// Remove drops the note with id and returns it.
func (s *Store) Remove(id string) (domain.Note, bool) {
	if i := indexOf(s.active, id); i >= 0 {
		n := s.active[i]
		s.active = append(s.active[:i:i], s.active[i+1:]...)
		return n, true
	}
	if i := indexOf(s.archived, id); i >= 0 {
		n := s.archived[i]
		s.archived = append(s.archived[:i:i], s.archived[i+1:]...)
		return n, true
	}
	return domain.Note{}, false
}

// Tags returns the distinct tags of all notes, by first appearance in
// descending creation order.
func (s *Store) Tags() []string {
	all := s.All()
	domain.SortNewestFirst(all)
	var tags []string
	seen := make(map[string]bool)
	for _, n := range all {
		for _, t := range n.Tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func indexOf(notes []domain.Note, id string) int {
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(notes []domain.Note) []domain.Note {
	if notes == nil {
		return nil
	}
	out := make([]domain.Note, len(notes))
	copy(out, notes)
	return out
}
