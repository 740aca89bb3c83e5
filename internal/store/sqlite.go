package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/speedwagon-io/condmon/internal/lib/logger/sl"
	"github.com/speedwagon-io/condmon/internal/model"
)

// ErrNotFound is returned when no report exists for the requested ID.
var ErrNotFound = errors.New("report not found")

// Store persists generated diagnostic reports.
type Store interface {
	Save(ctx context.Context, report *model.Report) error
	Get(ctx context.Context, id string) (*model.Report, error)
	ListByAsset(ctx context.Context, assetTag string, limit int) ([]*model.Report, error)
	Cleanup(ctx context.Context, maxAge time.Duration) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Close() error
}

type SQLiteStore struct {
	log *slog.Logger
	db  *sql.DB
}

func NewSQLiteStore(log *slog.Logger, dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one so
	// every query sees the same schema.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{
		log: log,
		db:  db,
	}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			asset_tag TEXT NOT NULL,
			status TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_zone TEXT NOT NULL,
			created_at TEXT NOT NULL,
			report_json TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_reports_asset ON reports(asset_tag);
		CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLiteStore) Save(ctx context.Context, report *model.Report) error {
	data, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO reports (id, asset_tag, status, score, max_zone, created_at, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		report.ID,
		report.AssetTag,
		string(report.Overall.Status),
		report.Overall.Score,
		report.MaxZone.String(),
		report.CreatedAt.Format(time.RFC3339),
		string(data),
	)

	if err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	s.log.Debug("report stored", slog.String("id", report.ID))
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Report, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT report_json FROM reports WHERE id = ?", id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	report, err := model.ReportFromJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return report, nil
}

func (s *SQLiteStore) ListByAsset(ctx context.Context, assetTag string, limit int) ([]*model.Report, error) {
	query := `
		SELECT report_json
		FROM reports
		WHERE asset_tag = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, assetTag, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*model.Report
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			s.log.Error("failed to scan row", sl.Err(err))
			continue
		}

		report, err := model.ReportFromJSON([]byte(data))
		if err != nil {
			s.log.Error("failed to unmarshal report", sl.Err(err))
			continue
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func (s *SQLiteStore) Cleanup(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)

	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup old reports: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		s.log.Info("cleaned up expired reports", slog.Int64("deleted", deleted))
	}

	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}

func (s *SQLiteStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM reports GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
