package usecase

import (
	"context"

	"exam-results/internal/entities"
)

// ResultUsecaseInterface abstracts result lookups for the delivery layer.
type ResultUsecaseInterface interface {
	LookupResult(ctx context.Context, regNo, semester string) (*entities.StudentResult, error)
}

// SemesterUsecaseInterface abstracts the semester catalogue.
type SemesterUsecaseInterface interface {
	Semesters(ctx context.Context) []entities.Semester
}
