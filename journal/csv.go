package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var (
	runsHeader      = []string{"run_id", "mode", "source", "output", "files", "failed", "started_at"}
	summariesHeader = []string{"run_id", "source", "horizon", "trades", "mean", "total"}
)

type CSVJournal struct {
	runs      *csv.Writer
	summaries *csv.Writer
	rf, sf    *os.File
}

// NewCSV appends to the runs and summaries files, writing headers when a
// file is new or empty.
func NewCSV(runsPath, summariesPath string) (*CSVJournal, error) {
	rf, rw, err := openAppend(runsPath, runsHeader)
	if err != nil {
		return nil, err
	}
	sf, sw, err := openAppend(summariesPath, summariesHeader)
	if err != nil {
		rf.Close()
		return nil, err
	}
	return &CSVJournal{runs: rw, summaries: sw, rf: rf, sf: sf}, nil
}

func openAppend(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	w := csv.NewWriter(f)

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if fi.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, nil, err
		}
	}
	return f, w, nil
}

func (j *CSVJournal) RecordRun(r Run) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Mode,
		r.Source,
		r.Output,
		strconv.Itoa(r.Files),
		strconv.Itoa(r.Failed),
		r.StartedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordSummary(s HorizonSummary) error {
	err := j.summaries.Write([]string{
		s.RunID,
		s.Source,
		s.Horizon,
		strconv.Itoa(s.Trades),
		f(s.Mean),
		f(s.Total),
	})
	if err != nil {
		return err
	}
	j.summaries.Flush()
	return j.summaries.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.summaries.Flush()
	if err := j.summaries.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
