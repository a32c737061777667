package chart

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rustyeddy/quickmark/markout"
)

// XAxis selects what the horizontal axis measures.
type XAxis int

const (
	// ByIndex plots each horizon against its own trade number.
	ByIndex XAxis = iota
	// ByTime plots against the trade timestamp.
	ByTime
)

func (x XAxis) String() string {
	if x == ByTime {
		return "time"
	}
	return "index"
}

// ParseXAxis accepts "index" or "time".
func ParseXAxis(s string) (XAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "index":
		return ByIndex, nil
	case "time":
		return ByTime, nil
	}
	return ByIndex, fmt.Errorf("unknown x axis %q (want index|time)", s)
}

const (
	timeFormat  = "01-02 15:04"
	singleTitle = "Cumulative Markout Performance by Horizon"
)

// Points returns the cumulative curve of g along the chosen axis.
func Points(g markout.Group, x XAxis) plotter.XYs {
	xys := make(plotter.XYs, len(g.Records))
	for i, r := range g.Records {
		xys[i].Y = g.Cumulative[i]
		if x == ByTime {
			xys[i].X = r.Timestamp
		} else {
			xys[i].X = float64(i)
		}
	}
	return xys
}

// NewPlot builds the per-horizon cumulative markout plot. An empty group
// list yields a plot with axes and no lines.
func NewPlot(groups []markout.Group, x XAxis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = singleTitle
	p.Y.Label.Text = "Cumulative Markout"
	if x == ByTime {
		p.X.Label.Text = "Time"
		p.X.Tick.Marker = plot.TimeTicks{Format: timeFormat}
	} else {
		p.X.Label.Text = "Trade Number"
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, g := range groups {
		l, err := plotter.NewLine(Points(g, x))
		if err != nil {
			return nil, fmt.Errorf("horizon %s: %w", g.Horizon, err)
		}
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(g.Horizon.Label+" horizon", l)
	}

	return p, nil
}

// RenderSingle draws one file's curves across the whole canvas.
func RenderSingle(c *Canvas, groups []markout.Group, x XAxis) error {
	p, err := NewPlot(groups, x)
	if err != nil {
		return err
	}
	p.Draw(c.dc)
	return nil
}

// Panel is the isolated outcome of loading and aggregating one batch file.
// Err is set when the file could not be used; Groups is then nil.
type Panel struct {
	Source markout.Source
	Groups []markout.Group
	Err    error
}

// Trades counts the records across all groups of the panel.
func (p Panel) Trades() int {
	n := 0
	for _, g := range p.Groups {
		n += g.Len()
	}
	return n
}

func panelPlot(pn Panel) (*plot.Plot, error) {
	if pn.Err != nil {
		p := plot.New()
		p.Title.Text = pn.Source.Title() + " (failed)"
		p.HideAxes()
		shrink(p)
		return p, nil
	}

	p, err := NewPlot(pn.Groups, ByTime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pn.Source.File, err)
	}
	p.Title.Text = pn.Source.Title()
	p.Y.Label.Text = ""
	p.X.Label.Text = ""
	shrink(p)
	return p, nil
}

func shrink(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(9)
	p.Legend.TextStyle.Font.Size = vg.Points(6)
	p.X.Tick.Label.Font.Size = vg.Points(6)
	p.Y.Tick.Label.Font.Size = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(7)
	p.Y.Label.TextStyle.Font.Size = vg.Points(7)
}

// RenderGrid lays panels out row-major in a GridShape grid. Cells past the
// last panel are left undrawn.
func RenderGrid(c *Canvas, panels []Panel) error {
	rows, cols := GridShape(len(panels))
	if rows == 0 {
		return nil
	}

	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	for i, pn := range panels {
		p, err := panelPlot(pn)
		if err != nil {
			return err
		}
		plots[i/cols][i%cols] = p
	}

	t := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, t, c.dc)
	for r := range plots {
		for col, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][col])
			}
		}
	}
	return nil
}
