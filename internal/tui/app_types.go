package tui

import (
	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewBoard
)

type modal int

const (
	modalNone modal = iota
	modalNote
	modalTasks
	modalTaskEdit
	modalCategories
	modalConfirm
)

// Messages produced by gateway commands. Every mutation's command performs
// its refetches before emitting, so a single message carries the fresh view.

type errMsg struct{ err error }

type loggedInMsg struct {
	user    model.User
	welcome bool // login vs register wording
}

type boardLoadedMsg struct {
	notes  []model.Note
	search bool // result came from search, not the filtered list
}

type sidebarLoadedMsg struct{ tasks []model.Task }

type categoriesLoadedMsg struct{ categories []model.Category }

type noteOpenedMsg struct{ draft controller.NoteDraft }

type noteSavedMsg struct {
	notes   []model.Note
	created bool
}

type noteDeletedMsg struct{ notes []model.Note }

type organizedMsg struct {
	note  model.Note
	notes []model.Note
}

type tasksGeneratedMsg struct {
	count int
	views controller.TaskViews
}

type tasksLoadedMsg struct {
	tasks  []model.Task
	status model.TaskStatus
}

type taskOpenedMsg struct{ draft controller.TaskDraft }

type taskViewsMsg struct {
	views controller.TaskViews
	toast string
}

type categorySavedMsg struct{ categories []model.Category }

type categoryDeletedMsg struct{ categories []model.Category }

type searchSettledMsg struct{ query string }

type toastExpireMsg struct{ seq int }

// confirmAction tells the confirm modal what to run on accept.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteNote
	confirmDeleteTask
	confirmDeleteCategory
)
