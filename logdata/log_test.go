package logdata

import "testing"

// ============================================================================
// LOG AND CHANNEL TESTS
// ============================================================================

func sampleLog() *Log {
	return &Log{
		Channels: []string{"RPM", "Boost", "rpm"},
		Units:    []string{"1/min", "psi", ""},
		Data:     [][]float64{{1000, 10, 1}, {2000, 20, 2}},
		Times:    []float64{0, 0.5},
	}
}

func TestColumnIndex(t *testing.T) {
	lg := sampleLog()
	tests := []struct {
		name  string
		index int
		found bool
	}{
		{"RPM", 0, true},
		{"rpm", 0, true}, // first case-insensitive match wins
		{"BOOST", 1, true},
		{"Oil", 0, false},
	}
	for _, tt := range tests {
		idx, ok := lg.ColumnIndex(tt.name)
		if ok != tt.found || (ok && idx != tt.index) {
			t.Errorf("ColumnIndex(%q) = (%d, %v), want (%d, %v)",
				tt.name, idx, ok, tt.index, tt.found)
		}
	}
}

func TestLogShape(t *testing.T) {
	lg := sampleLog()
	if lg.Rows() != 2 || lg.Cols() != 3 {
		t.Errorf("Rows/Cols = %d/%d, want 2/3", lg.Rows(), lg.Cols())
	}
	if lg.Duration() != 0.5 {
		t.Errorf("Duration = %v, want 0.5", lg.Duration())
	}
	if (&Log{}).Duration() != 0 {
		t.Error("empty log has nonzero duration")
	}
	if lg.UnitOf(0) != "1/min" || lg.UnitOf(7) != "" {
		t.Errorf("UnitOf = %q/%q", lg.UnitOf(0), lg.UnitOf(7))
	}
}

func TestRealChannel(t *testing.T) {
	lg := sampleLog()
	ch, err := NewReal(lg, 1)
	if err != nil {
		t.Fatalf("NewReal failed: %v", err)
	}

	if ch.Kind() != KindReal {
		t.Errorf("Kind = %v, want real", ch.Kind())
	}
	if ch.Name() != "Boost" || ch.Unit() != "psi" {
		t.Errorf("Name/Unit = %q/%q, want Boost/psi", ch.Name(), ch.Unit())
	}
	if ch.Len() != 2 {
		t.Errorf("Len = %d, want 2", ch.Len())
	}
	if ch.ValueAt(1) != 20 {
		t.Errorf("ValueAt(1) = %v, want 20", ch.ValueAt(1))
	}
	if ch.ValueAt(-1) != 0 || ch.ValueAt(5) != 0 {
		t.Error("out-of-range ValueAt did not return 0")
	}
}

func TestNewRealRejectsBadColumns(t *testing.T) {
	lg := sampleLog()
	if _, err := NewReal(lg, 3); err == nil {
		t.Error("NewReal accepted an out-of-range column")
	}
	if _, err := NewReal(lg, -1); err == nil {
		t.Error("NewReal accepted a negative column")
	}
	if _, err := NewReal(nil, 0); err == nil {
		t.Error("NewReal accepted a nil log")
	}
}

func TestChannelKindString(t *testing.T) {
	if KindReal.String() != "real" || KindComputed.String() != "computed" {
		t.Errorf("kind strings = %q/%q", KindReal.String(), KindComputed.String())
	}
	if ChannelKind(99).String() != "unknown" {
		t.Errorf("unexpected kind string %q", ChannelKind(99).String())
	}
}
