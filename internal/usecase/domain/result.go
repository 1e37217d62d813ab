package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exam-results/internal/entities"
)

// LookupResult loads the record of regNo for the selected semester(s) and aggregates it.
// An empty record is reported as ErrRecordNotFound and never aggregated.
func (u *Usecase) LookupResult(ctx context.Context, regNo, semester string) (*entities.StudentResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	regNo = strings.TrimSpace(regNo)
	if regNo == "" {
		return nil, fmt.Errorf("%w: registration number is required", entities.ErrInvalidArgument)
	}
	if strings.TrimSpace(semester) == "" {
		return nil, fmt.Errorf("%w: semester is required", entities.ErrInvalidArgument)
	}

	semesters, err := u.catalogue.Resolve(semester)
	if err != nil {
		return nil, err
	}

	rows, err := u.repo.StudentRows(ctx, semesters, regNo)
	if err != nil {
		if !errors.Is(err, entities.ErrLoadFailure) {
			err = fmt.Errorf("%w: %w", entities.ErrLoadFailure, err)
		}
		u.log.Errorw("failed to load student rows", "error", err, "reg_no", regNo, "semester", semester)
		return nil, err
	}
	if len(rows) == 0 {
		u.log.Infow("no record found", "reg_no", regNo, "semester", semester)
		return nil, fmt.Errorf("%w: %s", entities.ErrRecordNotFound, regNo)
	}

	res := &entities.StudentResult{
		RegistrationNo: regNo,
		Name:           rows[0].Name,
		Semester:       u.catalogue.Selection(semester),
		Aggregate:      u.agg.Aggregate(rows),
	}

	u.log.Debugw("result aggregated",
		"reg_no", regNo,
		"semester", res.Semester.Key,
		"status", res.Aggregate.Status,
		"backlogs", res.Aggregate.BacklogCount,
	)
	return res, nil
}

// Semesters returns the selectable semesters.
func (u *Usecase) Semesters(_ context.Context) []entities.Semester {
	return u.catalogue.List()
}
