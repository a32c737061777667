package journal

import (
	"database/sql"
	"fmt"
)

const runColumns = `run_id, mode, source, output, files, failed, started_at`

func scanRun(sc interface{ Scan(...any) error }) (Run, error) {
	var r Run
	err := sc.Scan(&r.RunID, &r.Mode, &r.Source, &r.Output, &r.Files, &r.Failed, &r.StartedAt)
	return r, err
}

// GetRun returns a single run by ID.
func (j *SQLite) GetRun(runID string) (Run, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	r, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Run{}, fmt.Errorf("run %q not found", runID)
		}
		return Run{}, err
	}
	return r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 means no limit.
func (j *SQLite) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListSummariesByRunID returns a run's horizon summaries in insertion order.
func (j *SQLite) ListSummariesByRunID(runID string) ([]HorizonSummary, error) {
	rows, err := j.db.Query(`
		SELECT run_id, source, horizon, trades, mean, total
		FROM summaries
		WHERE run_id = ?
		ORDER BY rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HorizonSummary
	for rows.Next() {
		var s HorizonSummary
		if err := rows.Scan(&s.RunID, &s.Source, &s.Horizon, &s.Trades, &s.Mean, &s.Total); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
