// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary persists the cross-transcript certification summary. Rows
// accumulate across invocations: new rows are appended, existing rows are
// never rewritten.
package summary

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/degree-certify/pkg/types"
)

const dbFile = "certification_summary.db"

// Row is one processed transcript's summary entry.
type Row struct {
	StudentName     string    `json:"student_name" yaml:"student_name"`
	StudentID       string    `json:"student_id" yaml:"student_id"`
	CoreCredits     float64   `json:"core_credits" yaml:"core_credits"`
	ResearchApplied float64   `json:"research_applied" yaml:"research_applied"`
	Level4xxCredits float64   `json:"level4xx_credits" yaml:"level4xx_credits"`
	TotalCredits    float64   `json:"total_credits" yaml:"total_credits"`
	Verdict         string    `json:"verdict" yaml:"verdict"`
	EvaluatedAt     time.Time `json:"evaluated_at" yaml:"evaluated_at"`
}

// NewRow builds a summary row from an identity and its evaluation result.
func NewRow(identity types.Identity, result types.CertificationResult) Row {
	return Row{
		StudentName:     identity.Name,
		StudentID:       identity.ID,
		CoreCredits:     result.CoreCredits,
		ResearchApplied: result.ResearchApplied,
		Level4xxCredits: result.Level4xxCredits,
		TotalCredits:    result.TotalCredits,
		Verdict:         string(result.Verdict),
		EvaluatedAt:     result.EvaluatedAt,
	}
}

// Store manages the summary SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the summary database under cfg.OutputDir,
// creating the schema if it does not exist.
func NewStore(cfg types.SummaryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating summary directory: %w", err)
	}

	dbPath := filepath.Join(cfg.OutputDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening summary database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS certifications (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			student_name TEXT NOT NULL,
			student_id TEXT NOT NULL,
			core_credits REAL NOT NULL,
			research_applied REAL NOT NULL,
			level4xx_credits REAL NOT NULL,
			total_credits REAL NOT NULL,
			verdict TEXT NOT NULL,
			evaluated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_certifications_student_id ON certifications(student_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Append inserts one summary row. Rows are never updated or deleted.
func (s *Store) Append(ctx context.Context, row Row) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO certifications
			(student_name, student_id, core_credits, research_applied,
			 level4xx_credits, total_credits, verdict, evaluated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.StudentName, row.StudentID, row.CoreCredits, row.ResearchApplied,
		row.Level4xxCredits, row.TotalCredits, row.Verdict,
		row.EvaluatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending summary row for %s: %w", row.StudentID, err)
	}
	return nil
}

// List returns all summary rows in insertion order.
func (s *Store) List(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_name, student_id, core_credits, research_applied,
			level4xx_credits, total_credits, verdict, evaluated_at
		 FROM certifications ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var r Row
		var evaluatedAt string
		if err := rows.Scan(
			&r.StudentName, &r.StudentID, &r.CoreCredits, &r.ResearchApplied,
			&r.Level4xxCredits, &r.TotalCredits, &r.Verdict, &evaluatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, evaluatedAt); parseErr == nil {
			r.EvaluatedAt = t
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
