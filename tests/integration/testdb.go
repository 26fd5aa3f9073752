// Package integration runs the storefront against a real PostgreSQL server
// started with testcontainers. The schema comes from the embedded
// golang-migrate files, so these tests also prove the migrations match what
// the repositories expect. Every test is skipped with -short.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront/backend/internal/infrastructure/migration"
)

const postgresImage = "postgres:16-alpine"

var (
	// one container per package run; tests truncate between uses
	sharedContainer    *tcpostgres.PostgresContainer
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB is a migrated PostgreSQL database
type TestDB struct {
	DB    *gorm.DB
	SqlDB *sql.DB
	DSN   string
	t     *testing.T
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

func startPostgres(ctx context.Context, dbName string) (*tcpostgres.PostgresContainer, string, error) {
	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, "", err
	}
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}
	return container, dsn, nil
}

// NewIsolatedTestDB starts a dedicated container. Use it for tests that
// move the schema version, such as migration round trips.
func NewIsolatedTestDB(t *testing.T) *TestDB {
	t.Helper()
	skipShort(t)

	ctx := context.Background()
	container, dsn, err := startPostgres(ctx, "storefront_isolated")
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return connect(t, dsn)
}

// NewTestDB returns a connection to the shared, migrated database with all
// storefront tables emptied
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()
	skipShort(t)

	sharedContainerMu.Lock()
	if sharedContainer == nil {
		container, dsn, err := startPostgres(context.Background(), "storefront_test")
		if err != nil {
			sharedContainerMu.Unlock()
			require.NoError(t, err, "failed to start PostgreSQL container")
		}
		sharedContainer, sharedContainerDSN = container, dsn

		tdb := connect(t, dsn)
		tdb.Migrate()
	}
	dsn := sharedContainerDSN
	sharedContainerMu.Unlock()

	tdb := connect(t, dsn)
	tdb.CleanTables()
	return tdb
}

// Migrate applies every embedded migration
func (tdb *TestDB) Migrate() {
	tdb.t.Helper()
	m, err := migration.New(tdb.SqlDB, nil)
	require.NoError(tdb.t, err, "failed to create migrator")
	require.NoError(tdb.t, m.Up(), "failed to apply migrations")
}

// CleanTables truncates every table except the migration bookkeeping
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "failed to list tables")

	for _, table := range tables {
		err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %q CASCADE", table)).Error
		require.NoError(tdb.t, err, "failed to truncate %s", table)
	}
}

func connect(t *testing.T, dsn string) *TestDB {
	t.Helper()

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if os.Getenv("TEST_DB_DEBUG") != "" {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), cfg)
	require.NoError(t, err, "failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	t.Cleanup(func() { sqlDB.Close() })

	return &TestDB{DB: db, SqlDB: sqlDB, DSN: dsn, t: t}
}

// CleanupSharedContainer terminates the shared container. TestMain calls it.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = sharedContainer.Terminate(ctx)
		sharedContainer = nil
		sharedContainerDSN = ""
	}
}
