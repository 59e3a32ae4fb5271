package controller

import (
	"strings"

	"inkwell-cli/internal/model"
)

type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterPinned
	FilterCategory
)

// Filter is the note-board filter. Exactly one kind is active at a time;
// selecting a kind replaces the previous one entirely.
type Filter struct {
	Kind     FilterKind
	Category string
}

func All() Filter                 { return Filter{Kind: FilterAll} }
func Pinned() Filter              { return Filter{Kind: FilterPinned} }
func ByCategory(name string) Filter {
	name = strings.TrimSpace(name)
	if name == "" {
		return All()
	}
	return Filter{Kind: FilterCategory, Category: name}
}

func (f Filter) String() string {
	switch f.Kind {
	case FilterPinned:
		return "pinned"
	case FilterCategory:
		return "category:" + f.Category
	default:
		return "all"
	}
}

// Apply runs the filter predicate over a freshly fetched list. The server
// list is never patched locally; filtering happens on every render from the
// latest fetch.
func (f Filter) Apply(notes []model.Note) []model.Note {
	switch f.Kind {
	case FilterPinned:
		out := make([]model.Note, 0, len(notes))
		for _, n := range notes {
			if n.IsPinned {
				out = append(out, n)
			}
		}
		return out
	case FilterCategory:
		out := make([]model.Note, 0, len(notes))
		for _, n := range notes {
			if n.Category == f.Category {
				out = append(out, n)
			}
		}
		return out
	default:
		return notes
	}
}
