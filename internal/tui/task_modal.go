package tui

import (
	"strings"

	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardStatusCycle is the task view's filter cycle; "" shows everything.
var boardStatusCycle = []model.TaskStatus{"", model.StatusPending, model.StatusInProgress, model.StatusCompleted}

var priorityCycle = []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}

var statusCycle = []model.TaskStatus{model.StatusPending, model.StatusInProgress, model.StatusCompleted}

func (m appModel) updateTasksKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "q":
		m.modal = modalNone
		m.ctrl.CloseBoard()
		return m, nil
	case "j", "down":
		m.taskSel = clamp(m.taskSel+1, 0, len(m.boardTasks)-1)
		return m, nil
	case "k", "up":
		m.taskSel = clamp(m.taskSel-1, 0, len(m.boardTasks)-1)
		return m, nil
	case "f":
		// Advance the status filter; the narrowing is done server-side.
		next := boardStatusCycle[0]
		for i, s := range boardStatusCycle {
			if s == m.boardStatus {
				next = boardStatusCycle[(i+1)%len(boardStatusCycle)]
				break
			}
		}
		m.loading = true
		return m, m.openTasksCmd(next)
	case "x", " ":
		if t, ok := m.selectedTask(); ok {
			return m, m.completeTaskCmd(t.TaskID)
		}
		return m, nil
	case "enter":
		if t, ok := m.selectedTask(); ok {
			m.loading = true
			return m, m.openTaskCmd(t.TaskID)
		}
		return m, nil
	case "d":
		if t, ok := m.selectedTask(); ok {
			return m.openConfirm(confirmDeleteTask, t.TaskID, "Delete this task?"), nil
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) selectedTask() (model.Task, bool) {
	if m.taskSel < 0 || m.taskSel >= len(m.boardTasks) {
		return model.Task{}, false
	}
	return m.boardTasks[m.taskSel], true
}

func (m appModel) openTaskEditor(d controller.TaskDraft) appModel {
	m.loading = false
	m.modal = modalTaskEdit
	m.taskDraft = d
	m.taskTitle.SetValue(d.Title)
	m.taskDue.SetValue(d.DueInput)
	m.taskFocus = 0
	m.taskTitle.Focus()
	m.taskDue.Blur()
	return m
}

func (m appModel) updateTaskEditKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.ctrl.CloseTask()
		if len(m.boardTasks) > 0 || m.boardStatus != "" {
			m.modal = modalTasks
		} else {
			m.modal = modalNone
		}
		return m, nil
	case "tab", "shift+tab":
		m.taskFocus = 1 - m.taskFocus
		if m.taskFocus == 0 {
			m.taskTitle.Focus()
			m.taskDue.Blur()
		} else {
			m.taskDue.Focus()
			m.taskTitle.Blur()
		}
		return m, nil
	case "ctrl+r":
		for i, p := range priorityCycle {
			if p == m.taskDraft.Priority {
				m.taskDraft.Priority = priorityCycle[(i+1)%len(priorityCycle)]
				return m, nil
			}
		}
		m.taskDraft.Priority = priorityCycle[0]
		return m, nil
	case "ctrl+t":
		for i, s := range statusCycle {
			if s == m.taskDraft.Status {
				m.taskDraft.Status = statusCycle[(i+1)%len(statusCycle)]
				return m, nil
			}
		}
		m.taskDraft.Status = statusCycle[0]
		return m, nil
	case "ctrl+s":
		d := m.taskDraft
		d.Title = strings.TrimSpace(m.taskTitle.Value())
		d.DueInput = strings.TrimSpace(m.taskDue.Value())
		if d.Title == "" {
			return m.showToast("Title is required", "warning")
		}
		m.loading = true
		return m, m.saveTaskCmd(d)
	case "ctrl+d":
		return m.openConfirm(confirmDeleteTask, m.taskDraft.ID, "Delete this task?"), nil
	}

	var cmd tea.Cmd
	if m.taskFocus == 0 {
		m.taskTitle, cmd = m.taskTitle.Update(k)
	} else {
		m.taskDue, cmd = m.taskDue.Update(k)
	}
	return m, cmd
}

func (m appModel) renderTasksModal() string {
	label := "all"
	if m.boardStatus != "" {
		label = string(m.boardStatus)
	}
	title := "Tasks (" + label + ")"

	var lines []string
	if len(m.boardTasks) == 0 {
		lines = append(lines, styleMuted().Render("No tasks found"))
	}
	for i, t := range m.boardTasks {
		check := "☐"
		if t.Status == model.StatusCompleted {
			check = "☑"
		}
		row := check + " " + t.Title + "  " + priorityStyle(string(t.Priority)).Render(string(t.Priority))
		if t.DueDate != nil {
			row += styleMuted().Render("  due " + controller.DueToInput(t.DueDate))
		}
		if i == m.taskSel {
			row = styleSelected().Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", styleMuted().Render("f filter  x complete  enter edit  d delete  esc close"))

	return renderModalBox(m.width, title, strings.Join(lines, "\n"))
}

func (m appModel) renderTaskEditModal() string {
	priority := priorityStyle(string(m.taskDraft.Priority)).Render(string(m.taskDraft.Priority))
	status := string(m.taskDraft.Status)

	content := strings.Join([]string{
		m.taskTitle.View(),
		"",
		"priority: " + priority + "   status: " + status,
		"due: " + m.taskDue.View(),
		"",
		styleMuted().Render("ctrl+s save  ctrl+r priority  ctrl+t status  ctrl+d delete  esc back"),
	}, "\n")

	return renderModalBox(m.width, "Edit Task", content)
}

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(modalBodyWidth(width) + 4)
	heading := styleAccent().Render(title)
	return box.Render(heading + "\n\n" + content)
}
