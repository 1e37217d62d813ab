package postgres

import (
	"context"
	"fmt"

	"exam-results/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	studentRowsQuery = `SELECT r.semester, r.registration_no, r.student_name, r.subject_name, r.grade, r.credits
FROM exam_results r
JOIN unnest($1::text[]) WITH ORDINALITY AS s(key, ord) ON s.key = r.semester
WHERE r.registration_no = $2
ORDER BY s.ord, r.id`
	deleteSemesterQuery = `DELETE FROM exam_results WHERE semester = $1`
)

var importColumns = []string{"semester", "registration_no", "student_name", "subject_name", "grade", "credits"}

// StudentRows returns the rows of regNo for the given semesters in selection order.
func (p *Postgres) StudentRows(ctx context.Context, semesters []entities.Semester, regNo string) ([]entities.ResultRow, error) {
	keys := make([]string, 0, len(semesters))
	for _, s := range semesters {
		keys = append(keys, s.Key)
	}

	rows, err := p.db.Query(ctx, studentRowsQuery, keys, regNo)
	if err != nil {
		return nil, fmt.Errorf("%w: query student rows: %w", entities.ErrLoadFailure, err)
	}
	defer rows.Close()

	out := make([]entities.ResultRow, 0)
	for rows.Next() {
		var (
			r       entities.ResultRow
			credits *string
		)
		if err := rows.Scan(&r.Semester, &r.RegistrationNo, &r.Name, &r.SubjectName, &r.Grade, &credits); err != nil {
			return nil, fmt.Errorf("%w: scan student rows: %w", entities.ErrLoadFailure, err)
		}
		if credits != nil {
			r.Credits = *credits
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate student rows: %w", entities.ErrLoadFailure, err)
	}

	return out, nil
}

// ImportRows replaces the stored rows of a semester.
func (p *Postgres) ImportRows(ctx context.Context, semester entities.Semester, rows []entities.ResultRow) (int, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteSemesterQuery, semester.Key); err != nil {
		return 0, fmt.Errorf("clear semester: %w", err)
	}

	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]
		var credits *string
		if r.Credits != nil {
			s := fmt.Sprint(r.Credits)
			credits = &s
		}
		return []any{semester.Key, r.RegistrationNo, r.Name, r.SubjectName, r.Grade, credits}, nil
	})

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"exam_results"}, importColumns, src)
	if err != nil {
		p.log.Errorw("failed to copy rows", "error", err, "semester", semester.Key)
		return 0, fmt.Errorf("copy rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	p.log.Infow("semester imported", "semester", semester.Key, "rows", n)
	return int(n), nil
}
