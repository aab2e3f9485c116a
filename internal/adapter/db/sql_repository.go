package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/port"
)

type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
)

var schemas = map[Dialect][]string{
	DialectMySQL: {
		`CREATE TABLE IF NOT EXISTS hash_analyses (
            id            VARCHAR(36) PRIMARY KEY,
            created_at    BIGINT NOT NULL,
            total_hashes  INT NOT NULL,
            total_cracked INT NOT NULL,
            total_time    DOUBLE NOT NULL,
            summary       TEXT NOT NULL,
            results       LONGTEXT NOT NULL,
            INDEX idx_hash_analyses_created_at (created_at)
        )`,
	},
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS hash_analyses (
            id            TEXT PRIMARY KEY,
            created_at    INTEGER NOT NULL,
            total_hashes  INTEGER NOT NULL,
            total_cracked INTEGER NOT NULL,
            total_time    REAL NOT NULL,
            summary       TEXT NOT NULL,
            results       TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_hash_analyses_created_at ON hash_analyses (created_at)`,
	},
}

const selectColumns = `id, created_at, total_hashes, total_cracked, total_time, summary, results`

type sqlRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLRepository opens driver ("mysql" or "sqlite") at dsn. An in-memory SQLite
// database is pinned to one connection so every query sees the same schema.
func NewSQLRepository(driver, dsn string) (port.Repository, error) {
	dialect, err := ParseDialect(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}

	maxOpen, maxIdle := defaultMaxOpenConns, defaultMaxIdleConns
	if dialect == DialectSQLite && isMemoryDSN(dsn) {
		maxOpen, maxIdle = 1, 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)

	logging.Debugf("db: opened %s driver (max open=%d)", dialect, maxOpen)
	return &sqlRepository{db: db, dialect: dialect}, nil
}

// NewRepositoryFromDB wraps an existing handle.
func NewRepositoryFromDB(db *sql.DB, dialect Dialect) port.Repository {
	return &sqlRepository{db: db, dialect: dialect}
}

func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(driver))) {
	case DialectMySQL:
		return DialectMySQL, nil
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func (r *sqlRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schemas[r.dialect] {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", r.dialect, err)
		}
	}
	return nil
}

func (r *sqlRepository) SaveAnalysis(ctx context.Context, analysis *domain.HashAnalysis) error {
	query := `
        INSERT INTO hash_analyses (
            id, created_at, total_hashes, total_cracked, total_time, summary, results
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	results, err := json.Marshal(analysis.Results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		analysis.ID,
		analysis.Timestamp.UnixNano(),
		analysis.TotalHashes,
		analysis.TotalCracked,
		analysis.TotalTime,
		analysis.Summary,
		string(results),
	)
	if err != nil {
		return fmt.Errorf("insert analysis %s: %w", analysis.ID, err)
	}
	return nil
}

func (r *sqlRepository) GetAnalysis(ctx context.Context, id string) (*domain.HashAnalysis, error) {
	query := `SELECT ` + selectColumns + ` FROM hash_analyses WHERE id = ?`

	analysis, err := scanAnalysis(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// ListAnalyses returns the newest analyses first. A non-positive limit returns all.
func (r *sqlRepository) ListAnalyses(ctx context.Context, limit int) ([]domain.HashAnalysis, error) {
	query := `SELECT ` + selectColumns + ` FROM hash_analyses ORDER BY created_at DESC`
	args := []interface{}{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []domain.HashAnalysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	return analyses, nil
}

func (r *sqlRepository) CountAnalyses(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hash_analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count analyses: %w", err)
	}
	return n, nil
}

func (r *sqlRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row scanner) (*domain.HashAnalysis, error) {
	var (
		analysis    domain.HashAnalysis
		createdAt   int64
		resultsJSON []byte
	)

	err := row.Scan(
		&analysis.ID,
		&createdAt,
		&analysis.TotalHashes,
		&analysis.TotalCracked,
		&analysis.TotalTime,
		&analysis.Summary,
		&resultsJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resultsJSON, &analysis.Results); err != nil {
		return nil, fmt.Errorf("decode results of %s: %w", analysis.ID, err)
	}

	analysis.Timestamp = time.Unix(0, createdAt).UTC()
	fillDerived(&analysis)
	return &analysis, nil
}

// fillDerived restores the summary figures that are not stored as columns.
func fillDerived(a *domain.HashAnalysis) {
	if a.TotalHashes == 0 {
		return
	}
	var scoreSum int
	for _, r := range a.Results {
		scoreSum += r.StrengthScore
	}
	a.CrackRate = float64(a.TotalCracked) / float64(a.TotalHashes) * 100
	if len(a.Results) > 0 {
		a.AverageStrength = float64(scoreSum) / float64(len(a.Results))
	}
}
