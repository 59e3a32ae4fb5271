package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var categoryColors = []string{"#667eea", "#f56565", "#48bb78", "#ed8936", "#9f7aea", "#38b2ac"}

func (m appModel) updateCategoriesKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab":
		m.catFocus = (m.catFocus + 1) % 3 // name, description, list
		m.catName.Blur()
		m.catDesc.Blur()
		switch m.catFocus {
		case 0:
			m.catName.Focus()
		case 1:
			m.catDesc.Focus()
		}
		return m, nil
	case "ctrl+l":
		m.catColorIdx = (m.catColorIdx + 1) % len(categoryColors)
		return m, nil
	case "ctrl+s", "enter":
		if m.catFocus == 2 && k.String() == "enter" {
			return m, nil
		}
		name := strings.TrimSpace(m.catName.Value())
		if name == "" {
			return m.showToast("Category name is required", "warning")
		}
		m.loading = true
		// The form is cleared on success only; a conflict leaves it intact.
		return m, m.createCategoryCmd(name, strings.TrimSpace(m.catDesc.Value()), categoryColors[m.catColorIdx])
	}

	if m.catFocus == 2 {
		switch k.String() {
		case "j", "down":
			m.catSel = clamp(m.catSel+1, 0, len(m.categories)-1)
			return m, nil
		case "k", "up":
			m.catSel = clamp(m.catSel-1, 0, len(m.categories)-1)
			return m, nil
		case "d":
			if m.catSel >= 0 && m.catSel < len(m.categories) {
				c := m.categories[m.catSel]
				return m.openConfirm(confirmDeleteCategory, c.CategoryID, "Delete category "+c.Name+"?"), nil
			}
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.catFocus == 0 {
		m.catName, cmd = m.catName.Update(k)
	} else {
		m.catDesc, cmd = m.catDesc.Update(k)
	}
	return m, cmd
}

func (m appModel) renderCategoriesModal() string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(categoryColors[m.catColorIdx])).
		Render("  ")

	var lines []string
	lines = append(lines,
		m.catName.View(),
		m.catDesc.View(),
		"color "+swatch,
		"",
	)

	if len(m.categories) == 0 {
		lines = append(lines, styleMuted().Render("No categories yet. Create one above!"))
	}
	for i, c := range m.categories {
		row := c.Name
		if c.Description != "" {
			row += styleMuted().Render("  " + c.Description)
		}
		if m.catFocus == 2 && i == m.catSel {
			row = styleSelected().Render(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", styleMuted().Render("ctrl+s create  ctrl+l color  tab focus  d delete  esc close"))
	return renderModalBox(m.width, "Categories", strings.Join(lines, "\n"))
}
