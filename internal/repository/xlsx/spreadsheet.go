// Package xlsx implements the result repository over per-semester spreadsheet files.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"exam-results/config"
	"exam-results/internal/entities"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Spreadsheet reads result tables from xlsx files and keeps parsed tables in memory.
type Spreadsheet struct {
	log     *zap.SugaredLogger
	dataDir string
	tables  *cache.Cache
}

type cachedTable struct {
	modTime time.Time
	rows    []entities.ResultRow
}

// New creates a spreadsheet repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *Spreadsheet {
	return &Spreadsheet{
		log:     log.Named("repo.xlsx"),
		dataDir: cfg.Results.DataDir,
		tables:  cache.New(cfg.Results.CacheTTL, cfg.Results.CacheCleanupInterval),
	}
}

// OnStart checks that the data directory is usable.
func (s *Spreadsheet) OnStart(_ context.Context) error {
	info, err := os.Stat(s.dataDir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dataDir)
	}
	s.log.Infow("spreadsheet source ready", "data_dir", s.dataDir)
	return nil
}

// OnStop drops cached tables.
func (s *Spreadsheet) OnStop(_ context.Context) error {
	s.tables.Flush()
	return nil
}

// StudentRows filters every selected semester table by registration number and merges the matches.
func (s *Spreadsheet) StudentRows(ctx context.Context, semesters []entities.Semester, regNo string) ([]entities.ResultRow, error) {
	key := NormalizeRegNo(regNo)
	out := make([]entities.ResultRow, 0)

	for _, sem := range semesters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := s.table(sem)
		if err != nil {
			return nil, fmt.Errorf("%w: semester %s: %w", entities.ErrLoadFailure, sem.Key, err)
		}

		for _, r := range rows {
			if r.RegistrationNo != key {
				continue
			}
			r.Semester = sem.Key
			out = append(out, r)
		}
	}

	s.log.Debugw("student rows filtered", "reg_no", key, "semesters", len(semesters), "rows", len(out))
	return out, nil
}

func (s *Spreadsheet) table(sem entities.Semester) ([]entities.ResultRow, error) {
	path := sem.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dataDir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if v, ok := s.tables.Get(path); ok {
		if t := v.(cachedTable); t.modTime.Equal(info.ModTime()) {
			return t.rows, nil
		}
	}

	rows, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	s.tables.SetDefault(path, cachedTable{modTime: info.ModTime(), rows: rows})
	s.log.Infow("semester table loaded", "semester", sem.Key, "file", path, "rows", len(rows))
	return rows, nil
}
