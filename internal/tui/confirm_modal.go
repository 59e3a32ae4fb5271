package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	confirmFocusConfirm = 0
	confirmFocusCancel  = 1
)

// openConfirm stashes the pending action; the previous modal is restored on
// cancel by re-deriving it from the action kind.
func (m appModel) openConfirm(action confirmAction, id string, label string) appModel {
	m.confirm = action
	m.confirmID = id
	m.confirmLabel = label
	m.confirmFocus = confirmFocusCancel
	m.modal = modalConfirm
	return m
}

func (m appModel) updateConfirmKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "n":
		return m.cancelConfirm(), nil
	case "tab", "left", "right", "h", "l":
		m.confirmFocus = 1 - m.confirmFocus
		return m, nil
	case "y":
		return m.acceptConfirm()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.acceptConfirm()
		}
		return m.cancelConfirm(), nil
	}
	return m, nil
}

func (m appModel) cancelConfirm() appModel {
	switch m.confirm {
	case confirmDeleteNote:
		m.modal = modalNote
	case confirmDeleteTask:
		if _, editing := m.ctrl.EditingTask(); editing {
			m.modal = modalTaskEdit
		} else {
			m.modal = modalTasks
		}
	case confirmDeleteCategory:
		m.modal = modalCategories
	default:
		m.modal = modalNone
	}
	m.confirm = confirmNone
	m.confirmID = ""
	return m
}

func (m appModel) acceptConfirm() (tea.Model, tea.Cmd) {
	action, id := m.confirm, m.confirmID
	m.confirm = confirmNone
	m.confirmID = ""
	m.loading = true
	switch action {
	case confirmDeleteNote:
		m.modal = modalNone
		return m, m.deleteNoteCmd(id)
	case confirmDeleteTask:
		m.modal = modalTasks
		return m, m.deleteTaskCmd(id)
	case confirmDeleteCategory:
		m.modal = modalCategories
		return m, m.deleteCategoryCmd(id)
	}
	m.modal = modalNone
	m.loading = false
	return m, nil
}

func (m appModel) renderConfirmModal() string {
	// Avoid borders on the buttons: nested borders show background artifacts
	// in some terminals.
	btnBase := lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	btnActive := lipgloss.NewStyle().Padding(0, 1).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if m.confirmFocus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	} else {
		cancel = btnActive.Render("Cancel")
	}

	content := strings.Join([]string{
		m.confirmLabel,
		"",
		confirm + " " + cancel,
		"",
		styleMuted().Render("tab: focus   enter: select   y/n   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, "Confirm", content)
}
