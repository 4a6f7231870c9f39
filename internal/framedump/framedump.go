// Package framedump writes cast frames as CSV, one row per column.
package framedump

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"chosenoffset.com/tilecaster/internal/core/raycast"
)

// Record is one column of a frame.
type Record struct {
	Frame         int     `csv:"frame"`
	Column        int     `csv:"column"`
	AngleDeg      float64 `csv:"angle_deg"`
	OffsetRad     float64 `csv:"offset_rad"`
	Length        float64 `csv:"length"`
	Perpendicular float64 `csv:"perpendicular"`
	HitX          float64 `csv:"hit_x"`
	HitY          float64 `csv:"hit_y"`
	CellCol       int     `csv:"cell_col"`
	CellRow       int     `csv:"cell_row"`
	Side          string  `csv:"side"`
	Status        string  `csv:"status"`
	Steps         int     `csv:"steps"`
}

// Records converts the hits of one frame.
func Records(frame int, hits []raycast.Hit) []Record {
	out := make([]Record, len(hits))
	for i, h := range hits {
		out[i] = Record{
			Frame:         frame,
			Column:        h.Column,
			AngleDeg:      h.Angle.Degrees(),
			OffsetRad:     h.Offset,
			Length:        h.Length,
			Perpendicular: h.Perpendicular(),
			HitX:          h.Point.X,
			HitY:          h.Point.Y,
			CellCol:       h.Cell.Col,
			CellRow:       h.Cell.Row,
			Side:          h.Side.String(),
			Status:        h.Status.String(),
			Steps:         h.Steps,
		}
	}
	return out
}

// Write writes a single frame with a header.
func Write(w io.Writer, hits []raycast.Hit) error {
	if err := gocsv.Marshal(Records(0, hits), w); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Writer appends frames to one CSV stream, writing the header once.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	frame         int
	headerWritten bool
}

// NewWriter writes frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Create opens path for writing, creating its directory.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Writer{out: f, closer: f}, nil
}

// WriteFrame appends the hits of the next frame.
func (w *Writer) WriteFrame(hits []raycast.Hit) error {
	records := Records(w.frame, hits)
	w.frame++
	if len(records) == 0 {
		return nil
	}

	if !w.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Frames returns how many frames were written.
func (w *Writer) Frames() int {
	return w.frame
}

// Close closes the underlying file, if the Writer opened one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
