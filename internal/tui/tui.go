package tui

import (
	"sync/atomic"

	"inkwell-cli/internal/controller"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive client. The debouncer feeds settled search
// queries back into the program's message loop, so each keystroke reschedules
// the pending search and at most one request per quiet period reaches the
// network.
func Run(ctrl *controller.Controller) error {
	// The debouncer fires on a timer goroutine while the program is assigned
	// here, so the handoff goes through an atomic pointer.
	var p atomic.Pointer[tea.Program]

	m := newAppModel(ctrl)
	m.searchDebounce = controller.NewDebouncer(controller.SearchDelay, func(query string) {
		if prog := p.Load(); prog != nil {
			prog.Send(searchSettledMsg{query: query})
		}
	})

	prog := tea.NewProgram(m, tea.WithAltScreen())
	p.Store(prog)
	_, err := prog.Run()
	return err
}
