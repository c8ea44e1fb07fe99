package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// Store is a PostgreSQL-backed Recorder. Each record is a single INSERT, so
// concurrent appends are atomic at the database and nothing is lost.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the audit database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Append inserts one immutable audit record. There is no update path by
// design: the table carries no ON CONFLICT clause and no UPDATE statement
// exists anywhere in this package.
func (s *Store) Append(ctx context.Context, record *types.AuditRecord) error {
	corrections, err := json.Marshal(record.Corrections)
	if err != nil {
		return fmt.Errorf("failed to marshal corrections: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO audit_records
		   (run_id, resume_hash, job_hash, raw_score, final_score, corrections, validation_errors, latency_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.RunID,
		record.InputHashes.Resume,
		record.InputHashes.JobDescription,
		record.RawScore,
		record.FinalScore,
		corrections,
		record.ValidationErrors,
		record.LatencyMS,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit record %s: %w", record.RunID, err)
	}
	return nil
}
