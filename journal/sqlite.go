package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r Run) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, mode, source, output, files, failed, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Mode, r.Source, r.Output, r.Files, r.Failed, r.StartedAt.UTC(),
	)
	return err
}

func (j *SQLite) RecordSummary(s HorizonSummary) error {
	_, err := j.db.Exec(`
		INSERT INTO summaries
		(run_id, source, horizon, trades, mean, total)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.RunID, s.Source, s.Horizon, s.Trades, s.Mean, s.Total,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
