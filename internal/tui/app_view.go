package tui

import (
	"strings"

	"inkwell-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	var body string
	switch {
	case m.modal == modalNote:
		body = m.renderNoteModal()
	case m.modal == modalTasks:
		body = m.renderTasksModal()
	case m.modal == modalTaskEdit:
		body = m.renderTaskEditModal()
	case m.modal == modalCategories:
		body = m.renderCategoriesModal()
	case m.modal == modalConfirm:
		body = m.renderConfirmModal()
	case m.view == viewLogin:
		body = m.renderLogin()
	default:
		body = m.renderBoard()
	}

	status := m.renderStatusLine()
	if status == "" {
		return body
	}
	return body + "\n" + status
}

func (m appModel) renderLogin() string {
	lines := []string{
		styleAccent().Render("inkwell"),
		"",
		"Log in with an existing username, or fill in an",
		"email as well to register a new account.",
		"",
		m.usernameInput.View(),
		m.emailInput.View(),
		"",
		styleMuted().Render("enter: submit   tab: switch field   ctrl+c: quit"),
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m appModel) renderBoard() string {
	main := m.renderNotesColumn()
	side := m.renderSidebar()
	cols := lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", main)

	header := m.renderHeader()
	return lipgloss.NewStyle().Padding(0, 1).Render(header + "\n" + cols)
}

func (m appModel) renderHeader() string {
	who := styleAccent().Render(m.user.Username)
	search := m.searchInput.View()
	filter := styleMuted().Render("[" + m.ctrl.Filter().String() + "]")
	if m.searchResults {
		filter = styleMuted().Render("[search]")
	}
	return who + "  " + search + "  " + filter
}

func (m appModel) renderNotesColumn() string {
	var lines []string
	if len(m.notes) == 0 {
		empty := "No notes yet. Press n to create one!"
		if m.searchResults {
			empty = "No notes found"
		}
		lines = append(lines, styleMuted().Render(empty))
	}
	for i, n := range m.notes {
		lines = append(lines, m.renderNoteCard(n, i == m.noteSel))
	}

	if n, ok := m.selectedNote(); ok && n.Body != "" {
		preview := renderNoteBody(n.Body, m.previewWidth())
		if preview != "" {
			lines = append(lines, "", styleMuted().Render("― preview ―"), preview)
		}
	}

	return strings.Join(lines, "\n")
}

func (m appModel) renderNoteCard(n model.Note, selected bool) string {
	title := n.Title
	if n.IsPinned {
		title = "📌 " + title
	}
	if selected {
		title = styleSelected().Render(title)
	}

	var meta []string
	if n.Category != "" {
		meta = append(meta, n.Category)
	}
	for _, t := range n.Tags {
		meta = append(meta, "#"+t.Name)
	}
	line := title
	if len(meta) > 0 {
		line += "  " + styleMuted().Render(strings.Join(meta, " "))
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(cardColor(n))).Render("▎")
	return bar + line
}

func cardColor(n model.Note) string {
	if n.Color != "" {
		return n.Color
	}
	return "#8b5cf6"
}

func (m appModel) renderSidebar() string {
	var lines []string
	lines = append(lines, styleAccent().Render("Tasks"))
	if len(m.sidebar) == 0 {
		lines = append(lines, styleMuted().Render("No active tasks"))
	}
	for i, t := range m.sidebar {
		row := string(rune('1'+i)) + " ☐ " + t.Title
		if t.Priority != model.PriorityLow {
			row += " " + priorityStyle(string(t.Priority)).Render(string(t.Priority))
		}
		lines = append(lines, row)
	}
	lines = append(lines, "",
		styleMuted().Render("a all  p pinned  c category"),
		styleMuted().Render("n new  t tasks  C categories"),
		styleMuted().Render("o organize  g gen tasks"),
		styleMuted().Render("1-5 complete task  / search"),
		styleMuted().Render("L logout  q quit"),
	)

	return lipgloss.NewStyle().Width(m.sidebarWidth()).Render(strings.Join(lines, "\n"))
}

func (m appModel) renderStatusLine() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spin.View())
	}
	if m.toast != "" {
		st := styleMuted()
		switch m.toastKind {
		case "success":
			st = lipgloss.NewStyle().Foreground(colorSuccess)
		case "warning":
			st = lipgloss.NewStyle().Foreground(colorWarning)
		case "error":
			st = lipgloss.NewStyle().Foreground(colorError).Bold(true)
		}
		parts = append(parts, st.Render(m.toast))
	}
	return strings.Join(parts, " ")
}

func (m appModel) sidebarWidth() int {
	w := m.width / 4
	if w < 24 {
		w = 24
	}
	if w > 36 {
		w = 36
	}
	return w
}

func (m appModel) previewWidth() int {
	w := m.width - m.sidebarWidth() - 6
	if w < 20 {
		w = 20
	}
	return w
}
