package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"exam-results/internal/aggregator"
	"exam-results/internal/entities"
	"exam-results/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type repoMock struct{ mock.Mock }

var _ repository.ResultInterface = (*repoMock)(nil)

func (m *repoMock) StudentRows(ctx context.Context, semesters []entities.Semester, regNo string) ([]entities.ResultRow, error) {
	args := m.Called(ctx, semesters, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ResultRow), args.Error(1)
}

var testCatalogue = entities.NewCatalogue([]entities.Semester{
	{Key: "5", Label: "Semester 5", File: "5thsemrslts.xlsx"},
	{Key: "6", Label: "Semester 6", File: "6thsemrslts.xlsx"},
})

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), repo, testCatalogue, aggregator.New(nil), time.Second)
}

func TestUsecase_LookupResultValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.LookupResult(context.Background(), "  ", "6")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.LookupResult(context.Background(), "21001", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "StudentRows", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_LookupResultUnknownSemester(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.LookupResult(context.Background(), "21001", "9")
	require.ErrorIs(t, err, entities.ErrUnknownSemester)
	repo.AssertNotCalled(t, "StudentRows", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_LookupResultNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("StudentRows", mock.Anything, mock.Anything, "21001").Return([]entities.ResultRow{}, nil)

	_, err := uc.LookupResult(context.Background(), "21001", "6")
	require.ErrorIs(t, err, entities.ErrRecordNotFound)
	require.Equal(t, entities.OutcomeNotFound, entities.OutcomeOf(err))
	repo.AssertExpectations(t)
}

func TestUsecase_LookupResultLoadFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("StudentRows", mock.Anything, mock.Anything, "21001").Return(nil, errors.New("disk on fire"))

	_, err := uc.LookupResult(context.Background(), "21001", "6")
	require.ErrorIs(t, err, entities.ErrLoadFailure)
	require.Equal(t, entities.OutcomeLoadFailure, entities.OutcomeOf(err))
}

func TestUsecase_LookupResultAggregates(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	rows := []entities.ResultRow{
		{RegistrationNo: "21001", Name: "Asha", SubjectName: "Math", Grade: "A", Credits: "4"},
		{RegistrationNo: "21001", Name: "Asha", SubjectName: "Phys", Grade: "F", Credits: "4"},
	}
	repo.On("StudentRows", mock.Anything, []entities.Semester{{Key: "6", Label: "Semester 6", File: "6thsemrslts.xlsx"}}, "21001").
		Return(rows, nil)

	res, err := uc.LookupResult(context.Background(), " 21001 ", "6")
	require.NoError(t, err)
	require.Equal(t, "Asha", res.Name)
	require.Equal(t, "21001", res.RegistrationNo)
	require.Equal(t, "6", res.Semester.Key)
	require.Equal(t, entities.StatusFail, res.Aggregate.Status)
	require.Equal(t, 1, res.Aggregate.BacklogCount)
	require.InDelta(t, 4.0, res.Aggregate.TotalCredits, 1e-9)
	require.Len(t, res.Aggregate.DisplayRows, 2)
	repo.AssertExpectations(t)
}

func TestUsecase_LookupResultAllSemesters(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("StudentRows", mock.Anything, mock.MatchedBy(func(s []entities.Semester) bool {
		return len(s) == 2 && s[0].Key == "5" && s[1].Key == "6"
	}), "21001").Return([]entities.ResultRow{
		{Name: "Asha", SubjectName: "Networks", Grade: "B", Credits: "3"},
		{Name: "Asha", SubjectName: "Compilers", Grade: "A", Credits: "4"},
	}, nil)

	res, err := uc.LookupResult(context.Background(), "21001", "ALL")
	require.NoError(t, err)
	require.Equal(t, entities.AllSemesters, res.Semester.Key)
	require.Equal(t, entities.StatusPass, res.Aggregate.Status)
	require.InDelta(t, 7.0, res.Aggregate.TotalCredits, 1e-9)
	repo.AssertExpectations(t)
}

func TestUsecase_Semesters(t *testing.T) {
	uc := newUsecase(&repoMock{})
	list := uc.Semesters(context.Background())
	require.Len(t, list, 2)
	require.Equal(t, "5", list[0].Key)
}

func TestUsecase_LookupResultLogsLoadFailureOnce(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	repo := &repoMock{}
	uc := New(zap.New(core).Sugar(), repo, testCatalogue, aggregator.New(nil), time.Second)

	repo.On("StudentRows", mock.Anything, mock.Anything, "21001").
		Return(nil, fmt.Errorf("%w: semester 6: open 6.xlsx", entities.ErrLoadFailure))

	_, err := uc.LookupResult(context.Background(), "21001", "6")
	require.ErrorIs(t, err, entities.ErrLoadFailure)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errs, 1)
	require.Equal(t, "21001", errs[0].ContextMap()["reg_no"])
}
