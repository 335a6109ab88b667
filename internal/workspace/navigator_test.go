package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowNoteRemembersListScreens(t *testing.T) {
	tests := []struct {
		name  string
		enter func(*Navigator)
		want  Screen
	}{
		{"from home", func(n *Navigator) {}, ScreenHome},
		{"from search", (*Navigator).ShowSearch, ScreenSearch},
		{"from tag", (*Navigator).ShowTag, ScreenTag},
		{"from tagged notes", (*Navigator).ShowTaggedNotes, ScreenTaggedNotes},
		{"from note", (*Navigator).ShowNote, ScreenHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Navigator
			tt.enter(&n)
			n.ShowNote()
			assert.Equal(t, ScreenNote, n.Screen())

			n.HideNote()
			assert.Equal(t, tt.want, n.Screen())
			_, ok := n.ReturnTo()
			assert.False(t, ok, "hideNote clears returnTo")
		})
	}
}

func TestShowNoteRecordsReturnOnlyFromListScreens(t *testing.T) {
	tests := []struct {
		name     string
		enter    func(*Navigator)
		recorded bool
		want     Screen
	}{
		{"from home", func(n *Navigator) {}, false, ScreenHome},
		{"from note", (*Navigator).ShowNote, false, ScreenHome},
		{"from search", (*Navigator).ShowSearch, true, ScreenSearch},
		{"from tag", (*Navigator).ShowTag, true, ScreenTag},
		{"from tagged notes", (*Navigator).ShowTaggedNotes, true, ScreenTaggedNotes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Navigator
			tt.enter(&n)
			n.ShowNote()

			back, ok := n.ReturnTo()
			assert.Equal(t, tt.recorded, ok)
			if ok {
				assert.Equal(t, tt.want, back)
			}
		})
	}
}

func TestTagThenNoteReturnsToTag(t *testing.T) {
	var n Navigator
	n.ShowTag()
	n.ShowNote()
	n.HideNote()
	assert.Equal(t, ScreenTag, n.Screen())
}

func TestShowSearchAndTagDoNotStack(t *testing.T) {
	var n Navigator
	n.ShowTag()
	n.ShowNote()
	n.ShowSearch()
	_, ok := n.ReturnTo()
	assert.False(t, ok)

	n.HideSearch()
	assert.Equal(t, ScreenHome, n.Screen())
}

func TestShowTaggedNotesAlwaysReturnsToTag(t *testing.T) {
	var n Navigator
	n.ShowSearch()
	n.ShowTaggedNotes()
	back, ok := n.ReturnTo()
	assert.True(t, ok)
	assert.Equal(t, ScreenTag, back)

	n.ShowNote()
	n.HideNote()
	assert.Equal(t, ScreenTaggedNotes, n.Screen())

	n.HideTaggedNotes()
	assert.Equal(t, ScreenHome, n.Screen())
}

func TestBack(t *testing.T) {
	var n Navigator
	assert.False(t, n.Back(), "nothing to leave on home")

	n.ShowTag()
	n.ShowTaggedNotes()
	n.ShowNote()

	assert.True(t, n.Back())
	assert.Equal(t, ScreenTaggedNotes, n.Screen())
	assert.True(t, n.Back())
	assert.Equal(t, ScreenHome, n.Screen())
}

func TestNavigatorAlwaysOnOneKnownScreen(t *testing.T) {
	steps := []func(*Navigator){
		(*Navigator).ShowNote, (*Navigator).HideNote,
		(*Navigator).ShowSearch, (*Navigator).HideSearch,
		(*Navigator).ShowTag, (*Navigator).HideTag,
		(*Navigator).ShowTaggedNotes, (*Navigator).HideTaggedNotes,
		func(n *Navigator) { n.Back() },
	}
	var n Navigator
	// walk every ordered pair of transitions
	for _, a := range steps {
		for _, b := range steps {
			a(&n)
			b(&n)
			assert.Contains(t, []Screen{ScreenHome, ScreenNote, ScreenSearch, ScreenTag, ScreenTaggedNotes}, n.Screen())
		}
	}
}

func TestSettingsCoordinator(t *testing.T) {
	var s SettingsCoordinator
	assert.Equal(t, SettingsState{}, s.State())

	s.Open()
	assert.Equal(t, SettingsState{Open: true, Pane: PaneColorTheme}, s.State())

	s.SelectPane(PaneChangePassword)
	s.Close()
	assert.Equal(t, SettingsState{Open: false, Pane: PaneChangePassword}, s.State())

	s.Toggle()
	assert.Equal(t, SettingsState{Open: true, Pane: PaneChangePassword}, s.State(), "reopening resumes the last pane")
	s.Toggle()
	assert.False(t, s.State().Open)
}
