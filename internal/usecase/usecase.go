package usecase

import (
	"time"

	"exam-results/internal/aggregator"
	"exam-results/internal/entities"
	"exam-results/internal/repository"
	"exam-results/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ResultUsecaseInterface
	SemesterUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.ResultInterface,
	catalogue entities.Catalogue,
	agg *aggregator.Aggregator,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, repo, catalogue, agg, timeout)
}
