package controller

import (
	"strings"
	"time"
)

// dueInputLayout is the timezone-naive editing representation for due dates
// (what a datetime field displays and accepts).
const dueInputLayout = "2006-01-02T15:04"

// DueToInput converts a wire instant to the local naive editing string.
// A nil due date edits as the empty string.
func DueToInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(dueInputLayout)
}

// DueFromInput parses the editing string back to an absolute instant in UTC.
// Empty input means no due date.
func DueFromInput(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dueInputLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	u := t.UTC()
	return &u, nil
}
