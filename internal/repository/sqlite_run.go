package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bbtree/internal/db"
	"github.com/alexanderramin/bbtree/internal/domain"
)

// ErrNotFound is returned when a run id is not in the store.
var ErrNotFound = errors.New("not found")

// runColumns is the canonical SELECT column list for runs.
const runColumns = `id, input_path, output_base, sense, follow, status, records, nodes,
		feasible, incumbent, error, started_at, finished_at`

// SQLiteRunRepo implements RunRepo on a SQLite database or transaction.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `INSERT INTO runs (id, input_path, output_base, sense, follow, status, records, nodes,
		feasible, incumbent, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.InputPath,
		run.OutputBase,
		string(run.Sense),
		boolToInt(run.Follow),
		string(run.Status),
		run.Records,
		run.Nodes,
		run.Feasible,
		boundToValue(run.Incumbent),
		run.Error,
		timeToString(run.StartedAt),
		nullableTimeToString(run.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	return run, err
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Finish stores the final counters, status and error of a run.
func (r *SQLiteRunRepo) Finish(ctx context.Context, run *domain.Run) error {
	query := `UPDATE runs SET status = ?, records = ?, nodes = ?, feasible = ?, incumbent = ?,
		error = ?, finished_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(run.Status),
		run.Records,
		run.Nodes,
		run.Feasible,
		boundToValue(run.Incumbent),
		run.Error,
		nullableTimeToString(run.FinishedAt),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s: %w", run.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRunRepo) AddSnapshot(ctx context.Context, s *domain.SnapshotRecord) error {
	query := `INSERT INTO snapshots (run_id, seq, records, nodes, incumbent, dot_path, outputs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.RunID,
		s.Seq,
		s.Records,
		s.Nodes,
		boundToValue(s.Incumbent),
		s.DotPath,
		joinOutputs(s.Outputs),
		timeToString(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) ListSnapshots(ctx context.Context, runID string) ([]*domain.SnapshotRecord, error) {
	query := `SELECT run_id, seq, records, nodes, incumbent, dot_path, outputs, created_at
		FROM snapshots WHERE run_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []*domain.SnapshotRecord
	for rows.Next() {
		var (
			s         domain.SnapshotRecord
			incumbent sql.NullFloat64
			outputs   string
			createdAt string
		)
		if err := rows.Scan(&s.RunID, &s.Seq, &s.Records, &s.Nodes, &incumbent, &s.DotPath, &outputs, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		s.Incumbent = boundFromNull(incumbent)
		s.Outputs = splitOutputs(outputs)
		s.CreatedAt = timeFromString(createdAt)
		out = append(out, &s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var (
		run        domain.Run
		sense      string
		status     string
		follow     int
		incumbent  sql.NullFloat64
		startedAt  string
		finishedAt sql.NullString
	)
	err := row.Scan(&run.ID, &run.InputPath, &run.OutputBase, &sense, &follow, &status,
		&run.Records, &run.Nodes, &run.Feasible, &incumbent, &run.Error, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}
	run.Sense = domain.Sense(sense)
	run.Status = domain.RunStatus(status)
	run.Follow = intToBool(follow)
	run.Incumbent = boundFromNull(incumbent)
	run.StartedAt = timeFromString(startedAt)
	run.FinishedAt = parseNullableTime(finishedAt)
	return &run, nil
}
