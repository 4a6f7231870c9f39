package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/tilecaster/internal/core/raycast"
)

func testOptions(out string) options {
	return options{
		out:    out,
		x:      math.NaN(),
		y:      math.NaN(),
		facing: math.NaN(),
		width:  4,
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRunSingleFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.csv")
	if err := run(testOptions(out)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := readLines(t, out)
	if len(lines) != 5 {
		t.Fatalf("Expected a header and 4 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,") {
		t.Errorf("Expected a CSV header, got %q", lines[0])
	}
}

func TestRunSweep(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sweep.csv")
	o := testOptions(out)
	o.sweep = 3
	if err := run(o); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if lines := readLines(t, out); len(lines) != 1+3*4 {
		t.Errorf("Expected a header and 12 rows, got %d lines", len(lines))
	}
}

func TestRunReturnsErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.csv")
	o := testOptions(out)
	o.width = 1
	if err := run(o); !errors.Is(err, raycast.ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}

	o = testOptions(out)
	o.mapRef = "nowhere"
	if err := run(o); err == nil {
		t.Error("Expected error for unknown map")
	}
}
