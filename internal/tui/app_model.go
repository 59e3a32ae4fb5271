package tui

import (
	"context"

	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// noteColors is the editor palette; the first entry is the default.
var noteColors = []string{"#FFFFFF", "#fecaca", "#fde68a", "#bbf7d0", "#bfdbfe", "#ddd6fe"}

type appModel struct {
	ctrl           *controller.Controller
	searchDebounce *controller.Debouncer

	width  int
	height int
	view   view
	modal  modal

	user     model.User
	loggedIn bool

	// Login form.
	loginFocus    int
	usernameInput textinput.Model
	emailInput    textinput.Model

	// Notes board.
	notes         []model.Note
	noteSel       int
	searchResults bool // board currently shows a search result
	searchInput   textinput.Model
	searchFocused bool
	sidebar       []model.Task
	sidebarSel    int
	categories    []model.Category

	// Note editor.
	noteDraft    controller.NoteDraft
	noteTitle    textinput.Model
	noteBody     textarea.Model
	noteColorIdx int
	noteFocus    int

	// Tasks view.
	boardTasks  []model.Task
	boardStatus model.TaskStatus
	taskSel     int

	// Task editor.
	taskDraft controller.TaskDraft
	taskTitle textinput.Model
	taskDue   textinput.Model
	taskFocus int

	// Categories view.
	catName     textinput.Model
	catDesc     textinput.Model
	catColorIdx int
	catSel      int
	catFocus    int

	// Confirm modal.
	confirm      confirmAction
	confirmID    string
	confirmLabel string
	confirmFocus int

	spin    spinner.Model
	loading bool

	toast     string
	toastKind string
	toastSeq  int
}

func newAppModel(ctrl *controller.Controller) appModel {
	m := appModel{ctrl: ctrl, view: viewLogin}

	m.usernameInput = textinput.New()
	m.usernameInput.Placeholder = "username"
	m.usernameInput.Focus()
	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "email (register only)"

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search notes"

	m.noteTitle = textinput.New()
	m.noteTitle.Placeholder = "title"
	m.noteBody = textarea.New()
	m.noteBody.Placeholder = "take a note..."

	m.taskTitle = textinput.New()
	m.taskDue = textinput.New()
	m.taskDue.Placeholder = "YYYY-MM-DDTHH:MM (empty = none)"

	m.catName = textinput.New()
	m.catName.Placeholder = "category name"
	m.catDesc = textinput.New()
	m.catDesc.Placeholder = "description (optional)"

	m.spin = spinner.New(spinner.WithSpinner(spinner.MiniDot))

	if u, ok := ctrl.User(); ok {
		m.user = u
		m.loggedIn = true
		m.view = viewBoard
		m.searchInput.Focus()
		m.searchFocused = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.loggedIn {
		return tea.Batch(m.spin.Tick, m.loadBoardCmd(), m.loadSidebarCmd(), m.loadCategoriesCmd())
	}
	return tea.Batch(m.spin.Tick, textinput.Blink)
}

// Gateway commands. Each runs in its own goroutine under bubbletea; the
// update loop stays responsive while a request is in flight. There is
// deliberately no in-flight guard: a rapid double submit issues two requests,
// and the last refetch wins.

func (m appModel) loginCmd(username string) tea.Cmd {
	return func() tea.Msg {
		u, err := m.ctrl.Login(context.Background(), username)
		if err != nil {
			return errMsg{err}
		}
		return loggedInMsg{user: u, welcome: true}
	}
}

func (m appModel) registerCmd(username, email string) tea.Cmd {
	return func() tea.Msg {
		u, err := m.ctrl.Register(context.Background(), username, email)
		if err != nil {
			return errMsg{err}
		}
		return loggedInMsg{user: u}
	}
}

func (m appModel) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.ctrl.Notes(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return boardLoadedMsg{notes: notes}
	}
}

func (m appModel) setFilterCmd(f controller.Filter) tea.Cmd {
	return func() tea.Msg {
		notes, err := m.ctrl.SetFilter(context.Background(), f)
		if err != nil {
			return errMsg{err}
		}
		return boardLoadedMsg{notes: notes}
	}
}

func (m appModel) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		notes, err := m.ctrl.Search(context.Background(), query)
		if err != nil {
			return errMsg{err}
		}
		return boardLoadedMsg{notes: notes, search: query != ""}
	}
}

func (m appModel) loadSidebarCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.ctrl.SidebarTasks(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return sidebarLoadedMsg{tasks: tasks}
	}
}

func (m appModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		cats, err := m.ctrl.Categories(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return categoriesLoadedMsg{categories: cats}
	}
}

func (m appModel) openNoteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		d, err := m.ctrl.OpenNote(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return noteOpenedMsg{draft: d}
	}
}

func (m appModel) saveNoteCmd(d controller.NoteDraft) tea.Cmd {
	created := d.ID == ""
	return func() tea.Msg {
		notes, err := m.ctrl.SaveNote(context.Background(), d)
		if err != nil {
			return errMsg{err}
		}
		return noteSavedMsg{notes: notes, created: created}
	}
}

func (m appModel) deleteNoteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		notes, err := m.ctrl.DeleteNote(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return noteDeletedMsg{notes: notes}
	}
}

func (m appModel) organizeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		n, notes, err := m.ctrl.Organize(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return organizedMsg{note: n, notes: notes}
	}
}

func (m appModel) generateTasksCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		created, views, err := m.ctrl.GenerateTasks(context.Background(), noteID)
		if err != nil {
			return errMsg{err}
		}
		return tasksGeneratedMsg{count: len(created), views: views}
	}
}

func (m appModel) openTasksCmd(status model.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.ctrl.OpenBoard(context.Background(), status)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks, status: status}
	}
}

func (m appModel) openTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		d, err := m.ctrl.OpenTask(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return taskOpenedMsg{draft: d}
	}
}

func (m appModel) saveTaskCmd(d controller.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		views, err := m.ctrl.SaveTask(context.Background(), d)
		if err != nil {
			return errMsg{err}
		}
		return taskViewsMsg{views: views, toast: "Task updated"}
	}
}

func (m appModel) completeTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		views, err := m.ctrl.CompleteTask(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return taskViewsMsg{views: views}
	}
}

func (m appModel) deleteTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		views, err := m.ctrl.DeleteTask(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return taskViewsMsg{views: views, toast: "Task deleted"}
	}
}

func (m appModel) createCategoryCmd(name, description, color string) tea.Cmd {
	return func() tea.Msg {
		cats, err := m.ctrl.CreateCategory(context.Background(), name, description, color)
		if err != nil {
			return errMsg{err}
		}
		return categorySavedMsg{categories: cats}
	}
}

func (m appModel) deleteCategoryCmd(id string) tea.Cmd {
	return func() tea.Msg {
		cats, err := m.ctrl.DeleteCategory(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return categoryDeletedMsg{categories: cats}
	}
}
