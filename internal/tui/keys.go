package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up, down   key.Binding
	open       key.Binding
	newNote    key.Binding
	edit       key.Binding
	remove     key.Binding
	archive    key.Binding
	search     key.Binding
	tags       key.Binding
	clear      key.Binding
	settings   key.Binding
	route      key.Binding
	follow     key.Binding
	dismiss    key.Binding
	back       key.Binding
	quit       key.Binding
	save       key.Binding
	nextField  key.Binding
	prevOption key.Binding
	nextOption key.Binding
	confirmYes key.Binding
	confirmNo  key.Binding
	forceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		newNote:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		archive:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
		search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		tags:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tags")),
		clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		route:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "active/archived")),
		follow:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follow toast")),
		dismiss:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		nextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevOption: key.NewBinding(key.WithKeys("h", "left")),
		nextOption: key.NewBinding(key.WithKeys("l", "right")),
		confirmYes: key.NewBinding(key.WithKeys("y", "Y", "enter")),
		confirmNo:  key.NewBinding(key.WithKeys("n", "N", "esc")),
		forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// browseHelp lists the bindings shown in the footer while browsing.
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.down, k.open, k.newNote, k.edit, k.remove, k.archive, k.search, k.tags, k.settings, k.route, k.quit}
}
