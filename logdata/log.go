package logdata

// ============================================================================
// LOG — Normalized in-memory representation of a parsed engine log
// ============================================================================
// Every vendor parser (CSV, binary, whatever) reduces its file to this shape:
// a list of channel names, a rectangular row-major sample matrix, and a
// parallel timestamp vector. Everything downstream (validation, binding,
// evaluation) works against this contract and never sees vendor formats.
// ============================================================================

import "strings"

// Log is a fully parsed log file. Data is row-major: Data[row][col] is the
// sample of channel Channels[col] at Times[row]. Times is non-decreasing and
// len(Times) == len(Data). Units is optional; when present it is parallel to
// Channels.
type Log struct {
	Channels []string    `json:"channels"`
	Units    []string    `json:"units,omitempty"`
	Data     [][]float64 `json:"data"`
	Times    []float64   `json:"times"`
}

// Rows returns the number of samples in the log.
func (l *Log) Rows() int {
	return len(l.Data)
}

// Cols returns the number of recorded channels.
func (l *Log) Cols() int {
	return len(l.Channels)
}

// ColumnIndex returns the index of the first channel whose name matches
// case-insensitively. When a log carries duplicate names the first column
// in file order is the binding.
func (l *Log) ColumnIndex(name string) (int, bool) {
	for i, ch := range l.Channels {
		if strings.EqualFold(ch, name) {
			return i, true
		}
	}
	return 0, false
}

// UnitOf returns the unit string recorded for the channel at col, or ""
// when units were not captured.
func (l *Log) UnitOf(col int) string {
	if col < 0 || col >= len(l.Units) {
		return ""
	}
	return l.Units[col]
}

// Duration returns the time span covered by the log in seconds.
func (l *Log) Duration() float64 {
	if len(l.Times) < 2 {
		return 0
	}
	return l.Times[len(l.Times)-1] - l.Times[0]
}
