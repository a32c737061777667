package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/rustyeddy/quickmark/chart"
)

// FileError is a batch file that could not be charted.
type FileError struct {
	File string
	Err  error
}

// BatchError collects the per-file failures of a batch run.
type BatchError struct {
	Total    int
	Failures []FileError
}

func newBatchError(panels []chart.Panel) *BatchError {
	be := &BatchError{Total: len(panels)}
	for _, pn := range panels {
		if pn.Err != nil {
			be.Failures = append(be.Failures, FileError{File: pn.Source.File, Err: pn.Err})
		}
	}
	if len(be.Failures) == 0 {
		return nil
	}
	return be
}

func (e *BatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = fmt.Sprintf("%s: %v", f.File, f.Err)
	}
	return fmt.Sprintf("%d of %d files failed: %s", len(e.Failures), e.Total, strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

func writeReport(out io.Writer, panels []chart.Panel) error {
	table := tablewriter.NewWriter(out)
	table.Header("File", "Account", "Symbol", "Horizons", "Trades", "Status")

	for _, pn := range panels {
		status := "ok"
		if pn.Err != nil {
			status = pn.Err.Error()
		}
		labels := make([]string, len(pn.Groups))
		for i, g := range pn.Groups {
			labels[i] = g.Horizon.Label
		}
		table.Append(
			pn.Source.File,
			pn.Source.ShortAccount(),
			pn.Source.Symbol,
			strings.Join(labels, " "),
			fmt.Sprintf("%d", pn.Trades()),
			status,
		)
	}

	return table.Render()
}
