// Package aggregator computes pass/fail status and credit totals for a student record.
package aggregator

import (
	"regexp"
	"strconv"
	"strings"

	"exam-results/internal/entities"
)

// DefaultBacklogGrades are the grades that count as a backlog.
var DefaultBacklogGrades = []string{"F", "S"}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Aggregator is stateless apart from its backlog grade set and safe for concurrent use.
type Aggregator struct {
	backlog map[string]struct{}
}

// New constructs an aggregator; an empty grade list falls back to DefaultBacklogGrades.
func New(backlogGrades []string) *Aggregator {
	if len(backlogGrades) == 0 {
		backlogGrades = DefaultBacklogGrades
	}
	set := make(map[string]struct{}, len(backlogGrades))
	for _, g := range backlogGrades {
		set[NormalizeGrade(g)] = struct{}{}
	}
	return &Aggregator{backlog: set}
}

// NormalizeGrade trims and uppercases a grade.
func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// IsBacklog reports whether grade belongs to the backlog set.
func (a *Aggregator) IsBacklog(grade string) bool {
	_, ok := a.backlog[NormalizeGrade(grade)]
	return ok
}

// Aggregate computes the verdict for rows. Empty input yields PASS with zero totals.
func (a *Aggregator) Aggregate(rows entities.StudentRecord) entities.AggregateResult {
	res := entities.AggregateResult{
		Status:      entities.StatusPass,
		DisplayRows: make([]entities.DisplayRow, 0, len(rows)),
	}

	for _, r := range rows {
		res.DisplayRows = append(res.DisplayRows, entities.DisplayRow{
			SubjectName: r.SubjectName,
			Grade:       r.Grade,
			Credits:     r.Credits,
		})
		if a.IsBacklog(r.Grade) {
			res.BacklogCount++
			continue
		}
		res.TotalCredits += ParseCredits(r.Credits)
	}

	if res.BacklogCount > 0 {
		res.Status = entities.StatusFail
	}
	return res
}

// ParseCredits converts a raw credits cell to a number. Strings yield the sum of
// every embedded decimal number; anything unparseable yields 0.
func ParseCredits(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		return sumNumbers(v)
	case *string:
		if v == nil {
			return 0
		}
		return sumNumbers(*v)
	case []byte:
		return sumNumbers(string(v))
	default:
		return 0
	}
}

func sumNumbers(s string) float64 {
	var total float64
	for _, m := range numberPattern.FindAllString(s, -1) {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		total += f
	}
	return total
}
