// Package session persists the active user identity across runs.
//
// The store is a single JSON record at ~/.inkwell/session.json. There is no
// expiry and no revalidation on load; a stale identity only surfaces when a
// later API call fails.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"inkwell-cli/internal/model"
)

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.inkwell).
	if v := strings.TrimSpace(os.Getenv("INKWELL_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".inkwell"), nil
}

func sessionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// Load returns the cached identity. The second return is false when no
// session exists; a corrupt file is an error, not an empty session.
func Load() (model.User, bool, error) {
	path, err := sessionPath()
	if err != nil {
		return model.User{}, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		return model.User{}, true, err
	}
	if strings.TrimSpace(u.UserID) == "" {
		return model.User{}, true, errors.New("session.json: missing userId")
	}
	return u, true, nil
}

// Save makes u the active identity.
func Save(u model.User) error {
	if strings.TrimSpace(u.UserID) == "" {
		return errors.New("refusing to save session without userId")
	}
	path, err := sessionPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "session.json.*.tmp", path, b, 0o600)
}

// Clear removes the cached identity. Purely local: logout never calls the
// server. A missing session is not an error.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// atomicWriteFile uses a unique temp file name + rename so concurrent
// processes (CLI + TUI) cannot clobber each other mid-write.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
