package tui

import (
	"strings"

	"inkwell-cli/internal/controller"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) openNoteEditor(d controller.NoteDraft) appModel {
	m.loading = false
	m.modal = modalNote
	m.noteDraft = d
	m.noteTitle.SetValue(d.Title)
	m.noteBody.SetValue(d.Body)
	m.noteColorIdx = 0
	for i, c := range noteColors {
		if strings.EqualFold(c, d.Color) {
			m.noteColorIdx = i
			break
		}
	}
	m.noteFocus = 0
	m.noteTitle.Focus()
	m.noteBody.Blur()
	return m
}

func (m appModel) updateNoteModalKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.modal = modalNone
		m.ctrl.CloseNote()
		return m, nil
	case "tab", "shift+tab":
		m.noteFocus = 1 - m.noteFocus
		if m.noteFocus == 0 {
			m.noteTitle.Focus()
			m.noteBody.Blur()
		} else {
			m.noteBody.Focus()
			m.noteTitle.Blur()
		}
		return m, nil
	case "ctrl+s":
		d := m.noteDraft
		d.Title = strings.TrimSpace(m.noteTitle.Value())
		d.Body = m.noteBody.Value()
		d.Color = noteColors[m.noteColorIdx]
		if d.Title == "" {
			return m.showToast("Title is required", "warning")
		}
		m.loading = true
		return m, m.saveNoteCmd(d)
	case "ctrl+p":
		m.noteDraft.Pinned = !m.noteDraft.Pinned
		return m, nil
	case "ctrl+l":
		m.noteColorIdx = (m.noteColorIdx + 1) % len(noteColors)
		return m, nil
	case "ctrl+d":
		if m.noteDraft.ID != "" {
			return m.openConfirm(confirmDeleteNote, m.noteDraft.ID, "Delete this note?"), nil
		}
		return m, nil
	case "ctrl+o":
		if m.noteDraft.ID == "" {
			return m.showToast("Save the note first", "warning")
		}
		m.loading = true
		return m, m.organizeCmd(m.noteDraft.ID)
	case "ctrl+g":
		if m.noteDraft.ID == "" {
			return m.showToast("Save the note first", "warning")
		}
		m.loading = true
		return m, m.generateTasksCmd(m.noteDraft.ID)
	}

	var cmd tea.Cmd
	if m.noteFocus == 0 {
		m.noteTitle, cmd = m.noteTitle.Update(k)
	} else {
		m.noteBody, cmd = m.noteBody.Update(k)
	}
	return m, cmd
}

func (m appModel) renderNoteModal() string {
	title := "Edit Note"
	if m.noteDraft.ID == "" {
		title = "Create Note"
	}

	pin := "☐ pinned"
	if m.noteDraft.Pinned {
		pin = styleAccent().Render("☑ pinned")
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(noteColors[m.noteColorIdx])).
		Render("  ")
	meta := pin + "  color " + swatch

	var lines []string
	lines = append(lines, m.noteTitle.View(), "", m.noteBody.View(), "", meta)

	// Category and tags are server-assigned; show them read-only.
	if m.noteDraft.Category != "" {
		lines = append(lines, styleAccent().Render(m.noteDraft.Category))
	}
	if len(m.noteDraft.Tags) > 0 {
		names := make([]string, 0, len(m.noteDraft.Tags))
		for _, t := range m.noteDraft.Tags {
			names = append(names, "#"+t.Name)
		}
		lines = append(lines, styleMuted().Render(strings.Join(names, " ")))
	}

	help := "ctrl+s save  ctrl+p pin  ctrl+l color  ctrl+o organize  ctrl+g gen tasks  ctrl+d delete  esc close"
	lines = append(lines, "", styleMuted().Render(help))

	return renderModalBox(m.width, title, strings.Join(lines, "\n"))
}
