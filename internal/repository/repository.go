// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"exam-results/config"
	"exam-results/internal/repository/postgres"
	"exam-results/internal/repository/xlsx"

	"go.uber.org/zap"
)

// Repository aggregates all read interfaces of a result source.
type Repository interface {
	LifecycleInterface
	ResultInterface
}

var (
	_ Repository      = (*xlsx.Spreadsheet)(nil)
	_ Repository      = (*postgres.Postgres)(nil)
	_ ImportInterface = (*postgres.Postgres)(nil)
)

// New constructs repository backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendXLSX:
		return xlsx.New(log, cfg), nil
	case config.BackendPostgres:
		return postgres.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
