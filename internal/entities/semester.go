package entities

import (
	"fmt"
	"strings"
)

// AllSemesters selects every configured semester.
const AllSemesters = "all"

// Semester maps a selector key to its source table.
type Semester struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	File  string `json:"-" yaml:"file"`
}

// Catalogue is the ordered set of known semesters.
type Catalogue struct {
	semesters []Semester
}

// NewCatalogue builds a catalogue in the configured order; the last entry is the latest term.
func NewCatalogue(semesters []Semester) Catalogue {
	list := make([]Semester, len(semesters))
	copy(list, semesters)
	return Catalogue{semesters: list}
}

// List returns a copy of the catalogue entries.
func (c Catalogue) List() []Semester {
	out := make([]Semester, len(c.semesters))
	copy(out, c.semesters)
	return out
}

// Resolve returns the semesters selected by key; "all" selects every entry.
func (c Catalogue) Resolve(key string) ([]Semester, error) {
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, AllSemesters) {
		if len(c.semesters) == 0 {
			return nil, fmt.Errorf("%w: catalogue is empty", ErrUnknownSemester)
		}
		return c.List(), nil
	}
	for _, s := range c.semesters {
		if s.Key == key {
			return []Semester{s}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSemester, key)
}

// Selection describes the semester(s) a lookup covered.
func (c Catalogue) Selection(key string) Semester {
	key = strings.TrimSpace(key)
	if strings.EqualFold(key, AllSemesters) {
		return Semester{Key: AllSemesters, Label: "All semesters"}
	}
	for _, s := range c.semesters {
		if s.Key == key {
			return s
		}
	}
	return Semester{Key: key, Label: key}
}
