// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"exam-results/internal/entities"
)

// Page is the view model of the lookup page.
type Page struct {
	RegNo     string
	Semester  string
	Semesters []entities.Semester
	Result    *entities.StudentResult
	Outcome   entities.Outcome
	Message   string
}

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Code    entities.Outcome `json:"code"`
	Message string           `json:"message"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SemesterDTO is the public view of a semester.
type SemesterDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ToPage builds the page model for a lookup outcome; res is ignored when err is set.
func ToPage(regNo, semester string, semesters []entities.Semester, res *entities.StudentResult, err error) Page {
	p := Page{
		RegNo:     regNo,
		Semester:  semester,
		Semesters: semesters,
		Outcome:   entities.OutcomeOf(err),
	}
	if err != nil {
		p.Message = Message(err)
		return p
	}
	p.Result = res
	return p
}

// ToErrorResponse builds the JSON error envelope for err.
func ToErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: entities.OutcomeOf(err), Message: Message(err)}}
}

// ToSemesterList maps catalogue entries to DTOs, hiding file locations.
func ToSemesterList(list []entities.Semester) []SemesterDTO {
	res := make([]SemesterDTO, 0, len(list))
	for _, s := range list {
		res = append(res, SemesterDTO{Key: s.Key, Label: s.Label})
	}
	return res
}

// Message returns the user-facing text for a lookup error.
func Message(err error) string {
	switch entities.OutcomeOf(err) {
	case entities.OutcomeFound:
		return ""
	case entities.OutcomeNotFound:
		return "No student found with that registration number."
	case entities.OutcomeInvalidArgument:
		return "Please enter a registration number and choose a semester."
	case entities.OutcomeUnknownSemester:
		return "Unknown semester selected."
	default:
		return "Results are temporarily unavailable. Please try again later."
	}
}
