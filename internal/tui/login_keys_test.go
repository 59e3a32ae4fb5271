package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLogin_EnterWithoutUsernameWarns(t *testing.T) {
	m, _ := newLoginModel(t)

	m2, _ := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m2.view != viewLogin {
		t.Fatal("left the login view without a username")
	}
	if m2.toast == "" || m2.toastKind != "warning" {
		t.Fatalf("expected a warning toast, got %q/%q", m2.toast, m2.toastKind)
	}
}

func TestLogin_EnterLogsInExistingUser(t *testing.T) {
	m, _ := newLoginModel(t)
	m.usernameInput.SetValue("alice")

	m2, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m2.loading {
		t.Fatal("expected loading state while the request runs")
	}
	m3, _ := runCmd(t, m2, cmd)
	if m3.view != viewBoard || !m3.loggedIn {
		t.Fatalf("not on the board after login: view=%v loggedIn=%v", m3.view, m3.loggedIn)
	}
	if m3.user.Username != "alice" {
		t.Fatalf("user = %q", m3.user.Username)
	}
	if !m3.searchFocused {
		t.Fatal("search should take focus on the board")
	}
	if !strings.Contains(m3.toast, "Welcome back") {
		t.Fatalf("toast = %q", m3.toast)
	}
}

func TestLogin_UnknownUserStaysOnLogin(t *testing.T) {
	m, _ := newLoginModel(t)
	m.usernameInput.SetValue("ghost")

	m2, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m3, _ := runCmd(t, m2, cmd)
	if m3.view != viewLogin {
		t.Fatal("failed login left the login view")
	}
	if m3.loading {
		t.Fatal("loading not cleared after error")
	}
	if m3.toastKind != "error" {
		t.Fatalf("toast kind = %q", m3.toastKind)
	}
}

func TestLogin_EmailFilledMeansRegister(t *testing.T) {
	m, _ := newLoginModel(t)
	m.usernameInput.SetValue("bob")
	m.emailInput.SetValue("bob@example.com")

	m2, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m3, _ := runCmd(t, m2, cmd)
	if m3.view != viewBoard {
		t.Fatal("register did not land on the board")
	}
	if !strings.Contains(m3.toast, "Registered as bob") {
		t.Fatalf("toast = %q", m3.toast)
	}
}

func TestLogin_TabTogglesFocus(t *testing.T) {
	m, _ := newLoginModel(t)
	if m.loginFocus != 0 {
		t.Fatalf("initial focus = %d", m.loginFocus)
	}
	m2, _ := drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m2.loginFocus != 1 || !m2.emailInput.Focused() {
		t.Fatal("tab did not move focus to email")
	}
	m3, _ := drive(t, m2, tea.KeyMsg{Type: tea.KeyTab})
	if m3.loginFocus != 0 || !m3.usernameInput.Focused() {
		t.Fatal("tab did not move focus back")
	}
}
