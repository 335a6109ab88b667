package workspace

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Drive runs cmd and every command it leads to synchronously, applying each
// message to w. It is how the command line uses a headless workspace.
// Batched commands run in order.
func Drive(w *Workspace, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if follow := w.Apply(msg); follow != nil {
			queue = append(queue, follow)
		}
	}
}
