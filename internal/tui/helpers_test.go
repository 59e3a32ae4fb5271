package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"inkwell-cli/internal/api"
	"inkwell-cli/internal/controller"
	"inkwell-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// tuiBackend serves a fixed user's data for model tests.
type tuiBackend struct {
	mu    sync.Mutex
	user  model.User
	notes []model.Note
	tasks map[string]*model.Task
	cats  []model.Category

	searchCalls int
	listCalls   int
}

func (b *tuiBackend) handler() http.Handler {
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("GET /api/users/username/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("name") != b.user.Username {
			http.NotFound(w, r)
			return
		}
		reply(w, b.user)
	})
	mux.HandleFunc("POST /api/users/register", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Username, Email string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		reply(w, model.User{UserID: "u-new", Username: in.Username, Email: in.Email})
	})
	mux.HandleFunc("GET /api/notes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.listCalls++
		notes := append([]model.Note(nil), b.notes...)
		b.mu.Unlock()
		reply(w, notes)
	})
	mux.HandleFunc("GET /api/notes/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("query")
		b.mu.Lock()
		b.searchCalls++
		out := []model.Note{}
		for _, n := range b.notes {
			if strings.Contains(n.Title, q) {
				out = append(out, n)
			}
		}
		b.mu.Unlock()
		reply(w, out)
	})
	mux.HandleFunc("POST /api/notes", func(w http.ResponseWriter, r *http.Request) {
		var in api.NoteInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		n := model.Note{NoteID: "n-new", UserID: in.UserID, Title: in.Title, Body: in.Body, Color: in.Color, IsPinned: in.IsPinned}
		b.notes = append(b.notes, n)
		b.mu.Unlock()
		reply(w, n)
	})
	mux.HandleFunc("GET /api/todos", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		out := []model.Task{}
		for _, t := range b.tasks {
			out = append(out, *t)
		}
		b.mu.Unlock()
		reply(w, out)
	})
	mux.HandleFunc("GET /api/todos/status/{status}", func(w http.ResponseWriter, r *http.Request) {
		status := model.TaskStatus(r.PathValue("status"))
		b.mu.Lock()
		out := []model.Task{}
		for _, t := range b.tasks {
			if t.Status == status {
				out = append(out, *t)
			}
		}
		b.mu.Unlock()
		reply(w, out)
	})
	mux.HandleFunc("PUT /api/todos/{id}/complete", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		t, ok := b.tasks[r.PathValue("id")]
		if ok {
			t.Status = model.StatusCompleted
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		reply(w, *t)
	})
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		cats := append([]model.Category(nil), b.cats...)
		b.mu.Unlock()
		reply(w, cats)
	})

	return mux
}

// newBoardModel returns a model already logged in and sitting on the board,
// with its controller wired to an in-memory backend.
func newBoardModel(t *testing.T) (appModel, *tuiBackend) {
	t.Helper()
	t.Setenv("INKWELL_CONFIG_DIR", t.TempDir())
	b := &tuiBackend{
		user:  model.User{UserID: "u-1", Username: "alice", Email: "alice@example.com"},
		tasks: map[string]*model.Task{},
	}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	client := api.New(api.Options{BaseURL: srv.URL + "/api", Logger: zerolog.Nop()})
	ctrl := controller.New(client)
	ctrl.Restore(b.user)
	return newAppModel(ctrl), b
}

// newLoginModel is newBoardModel without the restored identity: the model
// starts on the login view.
func newLoginModel(t *testing.T) (appModel, *tuiBackend) {
	t.Helper()
	t.Setenv("INKWELL_CONFIG_DIR", t.TempDir())
	b := &tuiBackend{
		user:  model.User{UserID: "u-1", Username: "alice", Email: "alice@example.com"},
		tasks: map[string]*model.Task{},
	}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	client := api.New(api.Options{BaseURL: srv.URL + "/api", Logger: zerolog.Nop()})
	return newAppModel(controller.New(client)), b
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive runs one update and re-asserts the concrete model type.
func drive(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// runCmd executes a gateway command and feeds its message back in.
func runCmd(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return drive(t, m, cmd())
}
