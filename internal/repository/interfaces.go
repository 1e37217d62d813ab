// Package repository contains repository interfaces for result sources.
package repository

import (
	"context"

	"exam-results/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ResultInterface exposes result table lookups.
type ResultInterface interface {
	// StudentRows returns the rows of regNo across semesters, in semester order.
	// A missing record is an empty slice, not an error.
	StudentRows(ctx context.Context, semesters []entities.Semester, regNo string) ([]entities.ResultRow, error)
}

// ImportInterface loads rows into a writable result store.
type ImportInterface interface {
	ImportRows(ctx context.Context, semester entities.Semester, rows []entities.ResultRow) (int, error)
}
