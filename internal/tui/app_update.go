package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inkwell-cli/internal/apperr"
	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.noteBody.SetWidth(modalBodyWidth(m.width))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case errMsg:
		m.loading = false
		return m.showToast(toastForError(msg.err))

	case loggedInMsg:
		m.user = msg.user
		m.loggedIn = true
		m.view = viewBoard
		m.loading = true
		m.searchInput.Focus()
		m.searchFocused = true
		greeting := "Registered as " + msg.user.Username
		if msg.welcome {
			greeting = "Welcome back, " + msg.user.Username + "!"
		}
		next, cmd := m.showToast(greeting, "success")
		return next, tea.Batch(cmd, m.loadBoardCmd(), m.loadSidebarCmd(), m.loadCategoriesCmd())

	case boardLoadedMsg:
		m.loading = false
		m.notes = msg.notes
		m.searchResults = msg.search
		m.noteSel = clamp(m.noteSel, 0, len(m.notes)-1)
		return m, nil

	case sidebarLoadedMsg:
		m.sidebar = msg.tasks
		m.sidebarSel = clamp(m.sidebarSel, 0, len(m.sidebar)-1)
		return m, nil

	case categoriesLoadedMsg:
		m.categories = msg.categories
		m.catSel = clamp(m.catSel, 0, len(m.categories)-1)
		return m, nil

	case noteOpenedMsg:
		return m.openNoteEditor(msg.draft), nil

	case noteSavedMsg:
		m.modal = modalNone
		m.notes = msg.notes
		m.searchResults = false
		text := "Note updated"
		if msg.created {
			text = "Note created"
		}
		return m.showToast(text, "success")

	case noteDeletedMsg:
		m.modal = modalNone
		m.notes = msg.notes
		m.noteSel = clamp(m.noteSel, 0, len(m.notes)-1)
		return m.showToast("Note deleted", "success")

	case organizedMsg:
		m.notes = msg.notes
		if m.modal == modalNote && m.noteDraft.ID == msg.note.NoteID {
			// Refresh the read-only category/tags display from the follow-up
			// fetch; the user's unsaved edits stay put.
			m.noteDraft.Category = msg.note.Category
			m.noteDraft.Tags = msg.note.Tags
		}
		return m.showToast("Note organized", "success")

	case tasksGeneratedMsg:
		m = m.applyTaskViews(msg.views)
		return m.showToast(fmt.Sprintf("Generated %d tasks", msg.count), "success")

	case tasksLoadedMsg:
		m.modal = modalTasks
		m.boardTasks = msg.tasks
		m.boardStatus = msg.status
		m.taskSel = clamp(m.taskSel, 0, len(m.boardTasks)-1)
		return m, nil

	case taskOpenedMsg:
		return m.openTaskEditor(msg.draft), nil

	case taskViewsMsg:
		m = m.applyTaskViews(msg.views)
		if m.modal == modalTaskEdit {
			if msg.views.BoardOpen {
				m.modal = modalTasks
			} else {
				m.modal = modalNone
			}
		}
		if msg.toast == "" {
			return m, nil
		}
		return m.showToast(msg.toast, "success")

	case categorySavedMsg:
		m.categories = msg.categories
		m.catName.SetValue("")
		m.catDesc.SetValue("")
		m.catColorIdx = 0
		return m.showToast("Category created", "success")

	case categoryDeletedMsg:
		m.categories = msg.categories
		m.catSel = clamp(m.catSel, 0, len(m.categories)-1)
		return m.showToast("Category deleted", "success")

	case searchSettledMsg:
		m.loading = true
		return m, m.searchCmd(strings.TrimSpace(msg.query))

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m appModel) updateKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.Type == tea.KeyCtrlC {
		m.searchDebounce.Stop()
		return m, tea.Quit
	}

	switch m.modal {
	case modalConfirm:
		return m.updateConfirmKey(k)
	case modalNote:
		return m.updateNoteModalKey(k)
	case modalTasks:
		return m.updateTasksKey(k)
	case modalTaskEdit:
		return m.updateTaskEditKey(k)
	case modalCategories:
		return m.updateCategoriesKey(k)
	}

	if m.view == viewLogin {
		return m.updateLoginKey(k)
	}
	return m.updateBoardKey(k)
}

func (m appModel) updateLoginKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "tab", "shift+tab":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.usernameInput.Focus()
			m.emailInput.Blur()
		} else {
			m.emailInput.Focus()
			m.usernameInput.Blur()
		}
		return m, nil
	case "enter":
		username := strings.TrimSpace(m.usernameInput.Value())
		email := strings.TrimSpace(m.emailInput.Value())
		if username == "" {
			return m.showToast("Please enter a username", "warning")
		}
		m.loading = true
		// Email filled in means the user wants a new account.
		if email != "" {
			return m, m.registerCmd(username, email)
		}
		return m, m.loginCmd(username)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(k)
	} else {
		m.emailInput, cmd = m.emailInput.Update(k)
	}
	return m, cmd
}

func (m appModel) updateBoardKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch k.String() {
		case "esc":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		case "tab", "down":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			// Bypass the quiet period for an explicit submit, and cancel any
			// pending debounce so the submit issues exactly one search.
			m.searchDebounce.Stop()
			m.loading = true
			return m, m.searchCmd(strings.TrimSpace(m.searchInput.Value()))
		}
		var cmd tea.Cmd
		before := m.searchInput.Value()
		m.searchInput, cmd = m.searchInput.Update(k)
		if m.searchInput.Value() != before {
			m.searchDebounce.Notify(strings.TrimSpace(m.searchInput.Value()))
		}
		return m, cmd
	}

	switch k.String() {
	case "q":
		m.searchDebounce.Stop()
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "j", "down":
		m.noteSel = clamp(m.noteSel+1, 0, len(m.notes)-1)
		return m, nil
	case "k", "up":
		m.noteSel = clamp(m.noteSel-1, 0, len(m.notes)-1)
		return m, nil
	case "enter":
		if n, ok := m.selectedNote(); ok {
			m.loading = true
			return m, m.openNoteCmd(n.NoteID)
		}
		return m, nil
	case "n":
		return m.openNoteEditor(m.ctrl.NewNote()), nil
	case "a":
		m.searchInput.SetValue("")
		m.loading = true
		return m, m.setFilterCmd(controller.All())
	case "p":
		m.searchInput.SetValue("")
		m.loading = true
		return m, m.setFilterCmd(controller.Pinned())
	case "c":
		// Cycle through category filters, wrapping back to all.
		next, ok := m.nextCategoryFilter()
		m.searchInput.SetValue("")
		m.loading = true
		if !ok {
			return m, m.setFilterCmd(controller.All())
		}
		return m, m.setFilterCmd(next)
	case "o":
		if n, ok := m.selectedNote(); ok {
			m.loading = true
			return m, m.organizeCmd(n.NoteID)
		}
		return m, nil
	case "g":
		if n, ok := m.selectedNote(); ok {
			m.loading = true
			return m, m.generateTasksCmd(n.NoteID)
		}
		return m, nil
	case "t":
		m.loading = true
		return m, m.openTasksCmd("")
	case "C":
		m.modal = modalCategories
		m.catFocus = 0
		m.catName.Focus()
		m.catDesc.Blur()
		return m, m.loadCategoriesCmd()
	case "1", "2", "3", "4", "5":
		idx := int(k.String()[0] - '1')
		if idx < len(m.sidebar) {
			return m, m.completeTaskCmd(m.sidebar[idx].TaskID)
		}
		return m, nil
	case "L":
		if err := m.ctrl.Logout(); err != nil {
			return m.showToast(err.Error(), "error")
		}
		m.loggedIn = false
		m.view = viewLogin
		m.notes = nil
		m.sidebar = nil
		m.categories = nil
		m.usernameInput.SetValue("")
		m.emailInput.SetValue("")
		m.usernameInput.Focus()
		m.loginFocus = 0
		return m.showToast("Logged out", "info")
	}
	return m, nil
}

// nextCategoryFilter advances the category cycle: all -> cat1 -> ... -> catN
// -> all. Returns ok=false when the cycle wraps (or there are no categories).
func (m appModel) nextCategoryFilter() (controller.Filter, bool) {
	if len(m.categories) == 0 {
		return controller.Filter{}, false
	}
	cur := m.ctrl.Filter()
	if cur.Kind != controller.FilterCategory {
		return controller.ByCategory(m.categories[0].Name), true
	}
	for i, c := range m.categories {
		if c.Name == cur.Category {
			if i+1 < len(m.categories) {
				return controller.ByCategory(m.categories[i+1].Name), true
			}
			return controller.Filter{}, false
		}
	}
	return controller.ByCategory(m.categories[0].Name), true
}

func (m appModel) selectedNote() (model.Note, bool) {
	if m.noteSel < 0 || m.noteSel >= len(m.notes) {
		return model.Note{}, false
	}
	return m.notes[m.noteSel], true
}

func (m appModel) applyTaskViews(v controller.TaskViews) appModel {
	m.sidebar = v.Sidebar
	m.sidebarSel = clamp(m.sidebarSel, 0, len(m.sidebar)-1)
	if v.BoardOpen {
		m.boardTasks = v.Board
		m.taskSel = clamp(m.taskSel, 0, len(m.boardTasks)-1)
	}
	return m
}

func (m appModel) showToast(text, kind string) (appModel, tea.Cmd) {
	m.toast = text
	m.toastKind = kind
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpireMsg{seq: seq} })
}

func toastForError(err error) (string, string) {
	switch {
	case apperr.IsValidation(err):
		return err.Error(), "warning"
	case errors.Is(err, apperr.ErrConflict):
		return err.Error(), "warning"
	case errors.Is(err, apperr.ErrNotFound):
		return err.Error(), "error"
	default:
		return err.Error(), "error"
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
