package helpers

import (
	"testing"
)

// ============================================================================
// CSV LOG PARSING TESTS
// ============================================================================

// Sample export in the common dash-logger shape
var runCSV = []byte(`Time (s),RPM (1/min),Boost (psi),AFR
0,1000,10,14.7
0.1,2000,20,13.2
0.2,3000,30,12.8
`)

func TestParseCSVLog(t *testing.T) {
	lg, err := ParseCSVLog(runCSV)
	if err != nil {
		t.Fatalf("ParseCSVLog failed: %v", err)
	}

	wantChannels := []string{"RPM", "Boost", "AFR"}
	if len(lg.Channels) != len(wantChannels) {
		t.Fatalf("channels = %v, want %v", lg.Channels, wantChannels)
	}
	for i, w := range wantChannels {
		if lg.Channels[i] != w {
			t.Errorf("channel %d = %q, want %q", i, lg.Channels[i], w)
		}
	}

	wantUnits := []string{"1/min", "psi", ""}
	for i, w := range wantUnits {
		if lg.UnitOf(i) != w {
			t.Errorf("unit %d = %q, want %q", i, lg.UnitOf(i), w)
		}
	}

	if lg.Rows() != 3 {
		t.Fatalf("rows = %d, want 3", lg.Rows())
	}
	if lg.Times[0] != 0 || lg.Times[2] != 0.2 {
		t.Errorf("times = %v", lg.Times)
	}
	if lg.Data[1][0] != 2000 || lg.Data[1][1] != 20 || lg.Data[1][2] != 13.2 {
		t.Errorf("row 1 = %v, want [2000 20 13.2]", lg.Data[1])
	}
}

// The time column is found by name wherever it sits; its values never
// appear among the channel samples.
func TestParseCSVLogTimeColumnAnywhere(t *testing.T) {
	data := []byte("RPM,time (s),Boost\n1000,0,10\n2000,0.5,20\n")
	lg, err := ParseCSVLog(data)
	if err != nil {
		t.Fatalf("ParseCSVLog failed: %v", err)
	}
	if len(lg.Channels) != 2 || lg.Channels[0] != "RPM" || lg.Channels[1] != "Boost" {
		t.Fatalf("channels = %v, want [RPM Boost]", lg.Channels)
	}
	if lg.Times[1] != 0.5 {
		t.Errorf("times = %v, want time column values", lg.Times)
	}
	if lg.Data[0][0] != 1000 || lg.Data[0][1] != 10 {
		t.Errorf("row 0 = %v, want [1000 10]", lg.Data[0])
	}
}

// Without a column named time, column 0 is the time base.
func TestParseCSVLogFallsBackToFirstColumn(t *testing.T) {
	data := []byte("Elapsed,RPM\n0,1000\n1,2000\n")
	lg, err := ParseCSVLog(data)
	if err != nil {
		t.Fatalf("ParseCSVLog failed: %v", err)
	}
	if len(lg.Channels) != 1 || lg.Channels[0] != "RPM" {
		t.Fatalf("channels = %v, want [RPM]", lg.Channels)
	}
	if lg.Times[1] != 1 {
		t.Errorf("times = %v, want Elapsed values", lg.Times)
	}
}

func TestParseCSVLogSkipsBadRows(t *testing.T) {
	data := []byte("Time (s),RPM\n0,1000\n0.1,not-a-number\n0.2\n0.3,4000\n")
	lg, err := ParseCSVLog(data)
	if err != nil {
		t.Fatalf("ParseCSVLog failed: %v", err)
	}
	if lg.Rows() != 2 {
		t.Fatalf("rows = %d, want 2 (bad rows skipped)", lg.Rows())
	}
	if lg.Data[1][0] != 4000 {
		t.Errorf("surviving rows = %v", lg.Data)
	}
}

func TestParseCSVLogHeaderOnly(t *testing.T) {
	lg, err := ParseCSVLog([]byte("Time (s),RPM\n"))
	if err != nil {
		t.Fatalf("ParseCSVLog failed: %v", err)
	}
	if lg.Rows() != 0 || len(lg.Channels) != 1 {
		t.Errorf("rows=%d channels=%v, want empty log with RPM", lg.Rows(), lg.Channels)
	}
}

func TestParseCSVLogEmptyInput(t *testing.T) {
	if _, err := ParseCSVLog(nil); err == nil {
		t.Error("ParseCSVLog(nil) succeeded, want header error")
	}
}

func TestSplitHeaderUnit(t *testing.T) {
	tests := []struct {
		header string
		name   string
		unit   string
	}{
		{"RPM (1/min)", "RPM", "1/min"},
		{"Boost (psi)", "Boost", "psi"},
		{"AFR", "AFR", ""},
		{"Time (s)", "Time", "s"},
		{"Oil Temp (°C)", "Oil Temp", "°C"},
		{"(weird)", "(weird)", ""},
		{"Trailing)", "Trailing)", ""},
	}

	for _, tt := range tests {
		name, unit := splitHeaderUnit(tt.header)
		if name != tt.name || unit != tt.unit {
			t.Errorf("splitHeaderUnit(%q) = (%q, %q), want (%q, %q)",
				tt.header, name, unit, tt.name, tt.unit)
		}
	}
}
