package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	source TEXT NOT NULL,
	output TEXT NOT NULL,
	files INTEGER NOT NULL,
	failed INTEGER NOT NULL,
	started_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	source TEXT NOT NULL,
	horizon TEXT NOT NULL,
	trades INTEGER NOT NULL,
	mean REAL NOT NULL,
	total REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_summaries_run ON summaries(run_id);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
