// Package entities contains core business entities.
package entities

// ResultStatus is the pass/fail verdict of a student record.
type ResultStatus string

const (
	// StatusPass marks a record without backlogs.
	StatusPass ResultStatus = "PASS"
	// StatusFail marks a record with at least one backlog.
	StatusFail ResultStatus = "FAIL"
)

// ResultRow is one subject line of a result table.
// Credits keeps the raw cell value: nil, a number or free text.
type ResultRow struct {
	RegistrationNo string
	Name           string
	Semester       string
	SubjectName    string
	Grade          string
	Credits        any
}

// StudentRecord is the ordered set of rows for a single registration number.
type StudentRecord []ResultRow

// DisplayRow is the projection shown in the result table.
type DisplayRow struct {
	SubjectName string `json:"subject_name"`
	Grade       string `json:"grade"`
	Credits     any    `json:"credits"`
}

// AggregateResult holds the computed verdict and totals for a record.
type AggregateResult struct {
	Status       ResultStatus `json:"status"`
	TotalCredits float64      `json:"total_credits"`
	BacklogCount int          `json:"backlog_count"`
	DisplayRows  []DisplayRow `json:"display_rows"`
}

// StudentResult is the outcome of a successful lookup.
type StudentResult struct {
	RegistrationNo string          `json:"registration_no"`
	Name           string          `json:"name"`
	Semester       Semester        `json:"semester"`
	Aggregate      AggregateResult `json:"result"`
}
