package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

const warningSeparator = "\n"

// SQLiteResultRepository хранит журнал запусков в SQLite, чтобы результаты
// переживали процесс.
type SQLiteResultRepository struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// NewSQLiteResultRepository открывает базу и создаёт таблицу results.
func NewSQLiteResultRepository(dbPath string) (*SQLiteResultRepository, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	repo := &SQLiteResultRepository{conn: conn}
	if err := repo.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *SQLiteResultRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL,
		output TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL DEFAULT '',
		min REAL,
		max REAL,
		mean REAL,
		median REAL,
		warning TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		processed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_results_filename ON results(filename);
	CREATE INDEX IF NOT EXISTS idx_results_status ON results(status);
	`

	_, err := r.conn.Exec(schema)
	return err
}

// Save записывает одну строку журнала.
func (r *SQLiteResultRepository) Save(ctx context.Context, result *entity.FileResult) error {
	if result == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var output, kind, warning, errText string
	if result.Artifact != nil {
		output = result.Artifact.Path
		kind = string(result.Artifact.Kind)
		warning = strings.Join(result.Artifact.Warnings, warningSeparator)
	}
	if result.Err != nil {
		errText = result.Err.Error()
	}

	var minV, maxV, meanV, medianV sql.NullFloat64
	if s := result.Statistics; s != nil {
		minV = sql.NullFloat64{Float64: s.Min, Valid: true}
		maxV = sql.NullFloat64{Float64: s.Max, Valid: true}
		meanV = sql.NullFloat64{Float64: s.Mean, Valid: true}
		medianV = sql.NullFloat64{Float64: s.Median, Valid: true}
	}

	processedAt := result.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO results (filename, mode, status, output, kind, min, max, mean, median, warning, error, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Source, string(result.Mode), status(result), output, kind,
		minV, maxV, meanV, medianV, warning, errText, processedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// List возвращает все строки журнала в порядке добавления.
func (r *SQLiteResultRepository) List(ctx context.Context) ([]entity.FileResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.conn.QueryContext(ctx,
		`SELECT filename, mode, output, kind, min, max, mean, median, warning, error, processed_at
		 FROM results ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []entity.FileResult
	for rows.Next() {
		var (
			source, mode, output, kind, warning, errText string
			minV, maxV, meanV, medianV                   sql.NullFloat64
			processedAt                                  time.Time
		)
		if err := rows.Scan(&source, &mode, &output, &kind, &minV, &maxV, &meanV, &medianV, &warning, &errText, &processedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		parsedMode, err := entity.ModeFromString(mode)
		if err != nil {
			return nil, err
		}

		result := entity.FileResult{Source: source, Mode: parsedMode, ProcessedAt: processedAt}
		if output != "" {
			result.Artifact = &entity.Artifact{Path: output, Kind: entity.ArtifactKind(kind)}
			if warning != "" {
				result.Artifact.Warnings = strings.Split(warning, warningSeparator)
			}
		}
		if minV.Valid {
			result.Statistics = &entity.Statistics{
				Min:    minV.Float64,
				Max:    maxV.Float64,
				Mean:   meanV.Float64,
				Median: medianV.Float64,
			}
		}
		if errText != "" {
			result.Err = errors.New(errText)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// Close закрывает соединение с базой.
func (r *SQLiteResultRepository) Close() error {
	return r.conn.Close()
}

func status(result *entity.FileResult) string {
	switch {
	case result.Failed():
		return "failed"
	case result.Warned():
		return "warned"
	default:
		return "ok"
	}
}

var _ port.ResultRepository = (*SQLiteResultRepository)(nil)
