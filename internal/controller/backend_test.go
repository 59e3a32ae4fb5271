package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"inkwell-cli/internal/api"
	"inkwell-cli/internal/model"

	"github.com/rs/zerolog"
)

// fakeBackend is an in-memory stand-in for the notes server, implementing just
// enough of the REST surface for controller tests.
type fakeBackend struct {
	mu         sync.Mutex
	nextID     int
	users      map[string]model.User // by username
	notes      map[string]*model.Note
	categories map[string]*model.Category
	tasks      map[string]*model.Task

	// calls counts requests per "METHOD path-shape" so tests can assert the
	// refetch-after-mutation discipline.
	calls map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:      map[string]model.User{},
		notes:      map[string]*model.Note{},
		categories: map[string]*model.Category{},
		tasks:      map[string]*model.Task{},
		calls:      map[string]int{},
	}
}

func (b *fakeBackend) id(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *fakeBackend) addUser(username string) model.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	u := model.User{UserID: b.id("u"), Username: username, Email: username + "@example.com"}
	b.users[username] = u
	return u
}

func (b *fakeBackend) addNote(userID, title string, pinned bool, category string) model.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := &model.Note{NoteID: b.id("n"), UserID: userID, Title: title, IsPinned: pinned, Category: category}
	b.notes[n.NoteID] = n
	return *n
}

func (b *fakeBackend) addTask(userID, title string, status model.TaskStatus) model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := &model.Task{TaskID: b.id("t"), UserID: userID, Title: title, Priority: model.PriorityMedium, Status: status}
	b.tasks[t.TaskID] = t
	return *t
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func conflict(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusConflict)
	writeJSON(w, map[string]string{"message": msg})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	track := func(key string, fn http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.calls[key]++
			b.mu.Unlock()
			fn(w, r)
		}
	}

	mux.HandleFunc("POST /api/users/register", track("register", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Username, Email string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		if _, ok := b.users[in.Username]; ok {
			b.mu.Unlock()
			conflict(w, "username already exists")
			return
		}
		u := model.User{UserID: b.id("u"), Username: in.Username, Email: in.Email}
		b.users[in.Username] = u
		b.mu.Unlock()
		writeJSON(w, u)
	}))

	mux.HandleFunc("GET /api/users/username/{name}", track("find-user", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		u, ok := b.users[r.PathValue("name")]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, u)
	}))

	mux.HandleFunc("GET /api/notes", track("list-notes", func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("userId")
		b.mu.Lock()
		out := []model.Note{}
		for _, n := range b.notes {
			if n.UserID == uid {
				out = append(out, *n)
			}
		}
		b.mu.Unlock()
		writeJSON(w, out)
	}))

	mux.HandleFunc("GET /api/notes/search", track("search-notes", func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("userId")
		q := r.URL.Query().Get("query")
		b.mu.Lock()
		out := []model.Note{}
		for _, n := range b.notes {
			if n.UserID == uid && (strings.Contains(n.Title, q) || strings.Contains(n.Body, q)) {
				out = append(out, *n)
			}
		}
		b.mu.Unlock()
		writeJSON(w, out)
	}))

	mux.HandleFunc("POST /api/notes", track("create-note", func(w http.ResponseWriter, r *http.Request) {
		var in api.NoteInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		n := &model.Note{NoteID: b.id("n"), UserID: in.UserID, Title: in.Title, Body: in.Body, Color: in.Color, IsPinned: in.IsPinned}
		b.notes[n.NoteID] = n
		b.mu.Unlock()
		writeJSON(w, *n)
	}))

	mux.HandleFunc("GET /api/notes/{id}", track("get-note", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		n, ok := b.notes[r.PathValue("id")]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, *n)
	}))

	mux.HandleFunc("PUT /api/notes/{id}", track("update-note", func(w http.ResponseWriter, r *http.Request) {
		var in api.NoteInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		n, ok := b.notes[r.PathValue("id")]
		if ok {
			n.Title, n.Body, n.Color, n.IsPinned = in.Title, in.Body, in.Color, in.IsPinned
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, *n)
	}))

	mux.HandleFunc("DELETE /api/notes/{id}", track("delete-note", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		_, ok := b.notes[r.PathValue("id")]
		delete(b.notes, r.PathValue("id"))
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	mux.HandleFunc("POST /api/notes/{id}/auto-organize", track("organize", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		n, ok := b.notes[r.PathValue("id")]
		if ok {
			n.Category = "Ideas"
			n.Tags = []model.Tag{{Name: "auto"}}
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	}))

	mux.HandleFunc("GET /api/categories", track("list-categories", func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("userId")
		b.mu.Lock()
		out := []model.Category{}
		for _, c := range b.categories {
			if c.UserID == uid {
				out = append(out, *c)
			}
		}
		b.mu.Unlock()
		writeJSON(w, out)
	}))

	mux.HandleFunc("POST /api/categories", track("create-category", func(w http.ResponseWriter, r *http.Request) {
		var in api.CategoryInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		for _, c := range b.categories {
			if c.UserID == in.UserID && c.Name == in.Name {
				b.mu.Unlock()
				conflict(w, "category already exists")
				return
			}
		}
		c := &model.Category{CategoryID: b.id("c"), UserID: in.UserID, Name: in.Name, Description: in.Description, Color: in.Color}
		b.categories[c.CategoryID] = c
		b.mu.Unlock()
		writeJSON(w, *c)
	}))

	mux.HandleFunc("DELETE /api/categories/{id}", track("delete-category", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		delete(b.categories, r.PathValue("id"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))

	listTasks := func(w http.ResponseWriter, uid string, status model.TaskStatus) {
		b.mu.Lock()
		out := []model.Task{}
		for _, t := range b.tasks {
			if t.UserID == uid && (status == "" || t.Status == status) {
				out = append(out, *t)
			}
		}
		b.mu.Unlock()
		writeJSON(w, out)
	}

	mux.HandleFunc("GET /api/todos", track("list-tasks", func(w http.ResponseWriter, r *http.Request) {
		listTasks(w, r.URL.Query().Get("userId"), "")
	}))

	mux.HandleFunc("GET /api/todos/status/{status}", track("list-tasks-status", func(w http.ResponseWriter, r *http.Request) {
		listTasks(w, r.URL.Query().Get("userId"), model.TaskStatus(r.PathValue("status")))
	}))

	mux.HandleFunc("GET /api/todos/{id}", track("get-task", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		t, ok := b.tasks[r.PathValue("id")]
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, *t)
	}))

	mux.HandleFunc("PUT /api/todos/{id}", track("update-task", func(w http.ResponseWriter, r *http.Request) {
		var in api.TaskInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		t, ok := b.tasks[r.PathValue("id")]
		if ok {
			t.Title, t.Description, t.Priority, t.Status, t.DueDate = in.Title, in.Description, in.Priority, in.Status, in.DueDate
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, *t)
	}))

	mux.HandleFunc("PUT /api/todos/{id}/complete", track("complete-task", func(w http.ResponseWriter, r *http.Request) {
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
		writeJSON(w, *t)
	}))

	mux.HandleFunc("DELETE /api/todos/{id}", track("delete-task", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		delete(b.tasks, r.PathValue("id"))
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))

	mux.HandleFunc("POST /api/todos/generate/{noteID}", track("generate-tasks", func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("userId")
		b.mu.Lock()
		n, ok := b.notes[r.PathValue("noteID")]
		var out []model.Task
		if ok {
			for i := 0; i < 2; i++ {
				t := &model.Task{
					TaskID:   b.id("t"),
					UserID:   uid,
					NoteID:   n.NoteID,
					Title:    fmt.Sprintf("%s step %d", n.Title, i+1),
					Priority: model.PriorityMedium,
					Status:   model.StatusPending,
				}
				b.tasks[t.TaskID] = t
				out = append(out, *t)
			}
		}
		b.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, out)
	}))

	return mux
}

// newTestController wires a Controller to a fresh fake backend and isolates the
// session store in a temp dir.
func newTestController(t *testing.T) (*Controller, *fakeBackend) {
	t.Helper()
	t.Setenv("INKWELL_CONFIG_DIR", t.TempDir())
	b := newFakeBackend()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	client := api.New(api.Options{BaseURL: srv.URL + "/api", Logger: zerolog.Nop()})
	return New(client), b
}
