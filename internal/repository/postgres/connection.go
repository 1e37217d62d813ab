// Package postgres implements the result repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"exam-results/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Postgres serves result tables stored in the exam_results table.
type Postgres struct {
	log *zap.SugaredLogger
	db  *pgxpool.Pool
	cfg config.PostgresConfig
}

// New creates a Postgres repository instance. No connection is made until OnStart.
func New(log *zap.SugaredLogger, cfg *config.Config) *Postgres {
	return &Postgres{
		log: log.Named("repo.postgres"),
		cfg: cfg.Postgres,
	}
}

// OnStart applies pending migrations and opens the query pool.
func (p *Postgres) OnStart(ctx context.Context) error {
	if err := p.migrate(ctx); err != nil {
		return err
	}

	pool, err := p.connect(ctx)
	if err != nil {
		return err
	}

	p.db = pool
	p.log.Infow("postgres ready", "host", p.cfg.Host, "port", p.cfg.Port, "db", p.cfg.DBName)
	return nil
}

// OnStop closes pool connections.
func (p *Postgres) OnStop(_ context.Context) error {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	return nil
}

func (p *Postgres) connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	if p.cfg.MaxConns > 0 {
		poolCfg.MaxConns = p.cfg.MaxConns
	}
	if p.cfg.MinConns > 0 {
		poolCfg.MinConns = p.cfg.MinConns
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

func (p *Postgres) migrate(ctx context.Context) error {
	sqlDB, err := sql.Open("postgres", p.cfg.DSN())
	if err != nil {
		return fmt.Errorf("open sql: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, os.DirFS(p.cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("migrations %s: %w", p.cfg.MigrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.MigrateTimeout)
	defer cancel()

	applied, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if len(applied) > 0 {
		p.log.Infow("migrations applied", "count", len(applied))
	}
	return nil
}
