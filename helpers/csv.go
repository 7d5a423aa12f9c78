package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ClassicMiniDIY/UltraLog-sub000/logdata"
)

// ============================================================================
// CSV HELPER — Parses CSV log exports into a logdata.Log
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, upload, archive).
// This helper converts the raw bytes into the normalized Log shape: one
// time vector, one rectangular sample matrix, channel names and units
// lifted from the header.
// ============================================================================

// ParseCSVLog parses CSV bytes into a Log.
//
// The header names the channels; a trailing parenthesized suffix is read
// as the unit ("RPM (1/min)" → channel "RPM", unit "1/min"). The first
// column whose bare name is "time" (case-insensitive) becomes the time
// vector; when none is, column 0 does. Rows with missing or non-numeric
// cells are skipped rather than failing the whole file.
func ParseCSVLog(data []byte) (*logdata.Log, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	names := make([]string, len(headers))
	units := make([]string, len(headers))
	for i, h := range headers {
		names[i], units[i] = splitHeaderUnit(strings.TrimSpace(h))
	}

	timeCol := 0
	for i, n := range names {
		if strings.EqualFold(n, "time") {
			timeCol = i
			break
		}
	}

	channels := make([]string, 0, len(names)-1)
	chanUnits := make([]string, 0, len(names)-1)
	for i, n := range names {
		if i == timeCol {
			continue
		}
		channels = append(channels, n)
		chanUnits = append(chanUnits, units[i])
	}

	lg := &logdata.Log{
		Channels: channels,
		Units:    chanUnits,
		Data:     [][]float64{},
		Times:    []float64{},
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		if len(row) < len(headers) {
			continue
		}

		values := make([]float64, 0, len(channels))
		timeVal := 0.0
		ok := true
		for i := range headers {
			f, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				ok = false
				break
			}
			if i == timeCol {
				timeVal = f
			} else {
				values = append(values, f)
			}
		}
		if !ok {
			continue
		}
		lg.Data = append(lg.Data, values)
		lg.Times = append(lg.Times, timeVal)
	}

	return lg, nil
}

// splitHeaderUnit splits "RPM (1/min)" into ("RPM", "1/min"). Headers
// without a trailing parenthesized suffix keep their full text as the
// name and an empty unit.
func splitHeaderUnit(h string) (name, unit string) {
	if !strings.HasSuffix(h, ")") {
		return h, ""
	}
	open := strings.LastIndex(h, " (")
	if open < 1 {
		return h, ""
	}
	return strings.TrimSpace(h[:open]), h[open+2 : len(h)-1]
}
