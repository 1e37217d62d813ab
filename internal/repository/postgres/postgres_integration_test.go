package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"exam-results/config"
	"exam-results/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	sem5 := entities.Semester{Key: "5", Label: "Semester 5"}
	sem6 := entities.Semester{Key: "6", Label: "Semester 6"}

	n, err := repo.ImportRows(ctx, sem5, []entities.ResultRow{
		{RegistrationNo: "21001", Name: "Asha", SubjectName: "Networks", Grade: "A", Credits: "4"},
		{RegistrationNo: "21002", Name: "Ravi", SubjectName: "Networks", Grade: "B", Credits: "4"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = repo.ImportRows(ctx, sem6, []entities.ResultRow{
		{RegistrationNo: "21001", Name: "Asha", SubjectName: "Compilers", Grade: "F", Credits: "3 + 1"},
		{RegistrationNo: "21001", Name: "Asha", SubjectName: "Seminar", Grade: "O"},
	})
	require.NoError(t, err)

	rows, err := repo.StudentRows(ctx, []entities.Semester{sem6, sem5}, "21001")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Compilers", rows[0].SubjectName)
	require.Equal(t, "3 + 1", rows[0].Credits)
	require.Equal(t, "Seminar", rows[1].SubjectName)
	require.Nil(t, rows[1].Credits)
	require.Equal(t, "Networks", rows[2].SubjectName)
	require.Equal(t, "5", rows[2].Semester)

	rows, err = repo.StudentRows(ctx, []entities.Semester{sem5}, "99999")
	require.NoError(t, err)
	require.Empty(t, rows)

	// reimport replaces the semester
	_, err = repo.ImportRows(ctx, sem5, []entities.ResultRow{
		{RegistrationNo: "21002", Name: "Ravi", SubjectName: "Databases", Grade: "A", Credits: 4},
	})
	require.NoError(t, err)

	rows, err = repo.StudentRows(ctx, []entities.Semester{sem5}, "21001")
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = repo.StudentRows(ctx, []entities.Semester{sem5}, "21002")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "4", rows[0].Credits)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=exam_results_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "exam_results_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=exam_results_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
