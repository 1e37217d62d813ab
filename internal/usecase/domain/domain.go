// Package domain contains application Usecases orchestrating result lookups.
package domain

import (
	"context"
	"time"

	"exam-results/internal/aggregator"
	"exam-results/internal/entities"
	"exam-results/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log       *zap.SugaredLogger
	repo      repository.ResultInterface
	catalogue entities.Catalogue
	agg       *aggregator.Aggregator
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.ResultInterface,
	catalogue entities.Catalogue,
	agg *aggregator.Aggregator,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:       log,
		repo:      repo,
		catalogue: catalogue,
		agg:       agg,
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
