package session

import (
	"os"
	"path/filepath"
	"testing"

	"inkwell-cli/internal/model"
)

func TestSaveLoadClear(t *testing.T) {
	t.Setenv("INKWELL_CONFIG_DIR", t.TempDir())

	if _, ok, err := Load(); err != nil || ok {
		t.Fatalf("fresh dir: Load() = ok=%v err=%v, want no session", ok, err)
	}

	u := model.User{UserID: "u-1", Username: "alice", Email: "alice@example.com"}
	if err := Save(u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := Load()
	if err != nil || !ok {
		t.Fatalf("Load after Save: ok=%v err=%v", ok, err)
	}
	if got != u {
		t.Fatalf("Load = %+v, want %+v", got, u)
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := Load(); ok {
		t.Fatal("session survived Clear")
	}
	// Clearing again is not an error.
	if err := Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestSaveRejectsEmptyUserID(t *testing.T) {
	t.Setenv("INKWELL_CONFIG_DIR", t.TempDir())
	if err := Save(model.User{Username: "noid"}); err == nil {
		t.Fatal("expected Save without userId to fail")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INKWELL_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(); err == nil {
		t.Fatal("expected corrupt session to error, not read as empty")
	}
}

func TestLoadMissingUserID(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INKWELL_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte(`{"username":"alice"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(); err == nil {
		t.Fatal("expected session without userId to error")
	}
}

func TestSavePermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INKWELL_CONFIG_DIR", dir)
	if err := Save(model.User{UserID: "u-1", Username: "alice"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("session.json mode = %v, want 0600", fi.Mode().Perm())
	}
}
