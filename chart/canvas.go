// Package chart draws cumulative markout curves with gonum/plot.
//
// Every figure is drawn onto an explicit Canvas that is written to disk and
// released when the render completes; there is no shared drawing surface.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats lists the output formats NewCanvas accepts.
var Formats = []string{"png", "jpg", "svg", "pdf"}

// Canvas is one output figure backed by a file path.
type Canvas struct {
	path   string
	cw     vg.CanvasWriterTo
	dc     draw.Canvas
	closed bool
}

// NewCanvas allocates a width x height figure. The image format follows the
// extension of path.
func NewCanvas(path string, width, height vg.Length) (*Canvas, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	var cw vg.CanvasWriterTo
	switch format {
	case "png":
		cw = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	case "jpg", "jpeg":
		cw = vgimg.JpegCanvas{Canvas: vgimg.New(width, height)}
	case "svg":
		cw = vgsvg.New(width, height)
	case "pdf":
		cw = vgpdf.New(width, height)
	default:
		return nil, fmt.Errorf("canvas %s: unsupported format %q (want one of %s)", path, format, strings.Join(Formats, ", "))
	}

	return &Canvas{path: path, cw: cw, dc: draw.New(cw)}, nil
}

// Path is the file the canvas is written to on Close.
func (c *Canvas) Path() string { return c.path }

// Close writes the figure to its path. Calling Close more than once is a no-op.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if dir := filepath.Dir(c.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("canvas %s: %w", c.path, err)
		}
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("canvas %s: %w", c.path, err)
	}
	if _, err := c.cw.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("canvas %s: write: %w", c.path, err)
	}
	return f.Close()
}

// WithCanvas runs fn against a fresh canvas and writes it out. Nothing is
// written when fn fails.
func WithCanvas(path string, width, height vg.Length, fn func(*Canvas) error) error {
	c, err := NewCanvas(path, width, height)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		c.closed = true
		return err
	}
	return c.Close()
}

// Open hands a written chart to the system viewer without waiting for it.
func Open(path string) error {
	return browser.OpenFile(path)
}
