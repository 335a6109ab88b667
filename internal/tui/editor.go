package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/notedeck/internal/domain"
	apperrors "github.com/cristianoliveira/notedeck/internal/errors"
)

const (
	focusTitle = iota
	focusTags
	focusBody
	editorFields
)

// editor is the note form: title, comma separated tags and a markdown body.
type editor struct {
	title textinput.Model
	tags  textinput.Model
	body  textarea.Model
	focus int
}

func newEditor() editor {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	tags := textinput.New()
	tags.Placeholder = "work, ideas"
	body := textarea.New()
	body.Placeholder = "Write your note in markdown..."
	body.ShowLineNumbers = false
	return editor{title: title, tags: tags, body: body}
}

func (e *editor) load(n domain.Note) tea.Cmd {
	e.title.SetValue(n.Title)
	e.tags.SetValue(strings.Join(n.Tags, ", "))
	e.body.SetValue(n.Details)
	return e.focusOn(focusTitle)
}

func (e *editor) reset() tea.Cmd {
	return e.load(domain.Note{})
}

func (e *editor) fields() domain.NoteFields {
	return domain.NoteFields{
		Title:   e.title.Value(),
		Tags:    domain.ParseTags(e.tags.Value()),
		Details: e.body.Value(),
	}
}

func (e *editor) next() tea.Cmd {
	return e.focusOn((e.focus + 1) % editorFields)
}

func (e *editor) focusOn(field int) tea.Cmd {
	e.focus = field
	e.title.Blur()
	e.tags.Blur()
	e.body.Blur()
	switch field {
	case focusTags:
		return e.tags.Focus()
	case focusBody:
		return e.body.Focus()
	default:
		return e.title.Focus()
	}
}

func (e *editor) blur() {
	e.title.Blur()
	e.tags.Blur()
	e.body.Blur()
}

func (e *editor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.focus {
	case focusTags:
		e.tags, cmd = e.tags.Update(msg)
	case focusBody:
		e.body, cmd = e.body.Update(msg)
	default:
		e.title, cmd = e.title.Update(msg)
	}
	return cmd
}

func (e *editor) resize(width, height int) {
	e.title.Width = max(width-2, 10)
	e.tags.Width = max(width-2, 10)
	e.body.SetWidth(max(width, 10))
	e.body.SetHeight(max(height-8, 3))
}

func (e *editor) view(st styles, creating bool, fieldErr error) string {
	var b strings.Builder
	heading := "Edit note"
	if creating {
		heading = "New note"
	}
	b.WriteString(st.header.Render(heading))
	b.WriteString("\n")
	writeField(&b, st, "Title", e.title.View(), "title", fieldErr)
	writeField(&b, st, "Tags", e.tags.View(), "tags", fieldErr)
	writeField(&b, st, "Body", e.body.View(), "details", fieldErr)
	b.WriteString(st.muted.Render("tab: next field  |  ctrl+s: save  |  esc: cancel"))
	return b.String()
}

// writeField renders a labelled input with its inline validation message.
func writeField(b *strings.Builder, st styles, label, input, field string, fieldErr error) {
	b.WriteString(st.field.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if fieldErr != nil && apperrors.FieldOf(fieldErr) == field {
		b.WriteString(st.errText.Render(apperrors.MessageOf(fieldErr)))
		b.WriteString("\n")
	}
}

const (
	pwCurrent = iota
	pwNew
	pwConfirm
	pwFields
)

// passwordForm is the change password pane.
type passwordForm struct {
	inputs [pwFields]textinput.Model
	focus  int
	active bool
}

func newPasswordForm() passwordForm {
	var f passwordForm
	placeholders := [pwFields]string{"Current password", "New password", "Confirm new password"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
		f.inputs[i] = in
	}
	return f
}

func (f *passwordForm) start() tea.Cmd {
	f.active = true
	return f.focusOn(pwCurrent)
}

func (f *passwordForm) stop() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
}

func (f *passwordForm) values() (current, next, confirm string) {
	return f.inputs[pwCurrent].Value(), f.inputs[pwNew].Value(), f.inputs[pwConfirm].Value()
}

func (f *passwordForm) next() tea.Cmd {
	return f.focusOn((f.focus + 1) % pwFields)
}

func (f *passwordForm) focusOn(i int) tea.Cmd {
	f.focus = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[i].Focus()
}

func (f *passwordForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *passwordForm) view(st styles, fieldErr error) string {
	if !f.active {
		return st.muted.Render("enter: change password")
	}
	var b strings.Builder
	fields := [pwFields]string{"current_password", "new_password", "confirm_password"}
	labels := [pwFields]string{"Current password", "New password", "Confirm password"}
	for i := range f.inputs {
		writeField(&b, st, labels[i], f.inputs[i].View(), fields[i], fieldErr)
	}
	b.WriteString(st.muted.Render("tab: next field  |  enter: submit  |  esc: cancel"))
	return b.String()
}
