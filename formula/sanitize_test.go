package formula

import "testing"

// ============================================================================
// SANITIZATION TESTS
// ============================================================================

func TestSanitizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RPM", "RPM"},
		{"Boost", "Boost"},
		{`"Manifold Pressure"`, "_Manifold_Pressure_"},
		{"RPM[-1]", "RPM__1_"},
		{"RPM[+1]", "RPM__1_"},
		{"Boost@-0.1s", "Boost__0_1s"},
		{`"Oil Temp"[-2]`, "_Oil_Temp___2_"},
		{"already_clean_123", "already_clean_123"},
		{"0-60 Time", "v_0_60_Time"},
		{"12v Rail", "v_12v_Rail"},
		{"λ Sensor", "λ_Sensor"},
		{"", "_"},
	}

	for _, tt := range tests {
		got := SanitizeIdent(tt.input)
		if got != tt.expected {
			t.Errorf("SanitizeIdent(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Different source texts can sanitize to the same identifier; per-formula
// assignment must keep them apart deterministically.
func TestIdentifiersForResolvesCollisions(t *testing.T) {
	refs := []Reference{
		{Name: "RPM", Shift: BySamples(1), FullMatch: "RPM[+1]"},
		{Name: "RPM", Shift: BySamples(-1), FullMatch: "RPM[-1]"},
	}
	ids := identifiersFor(refs)

	if ids["RPM[+1]"] != "RPM__1_" {
		t.Errorf("first id = %q, want RPM__1_", ids["RPM[+1]"])
	}
	if ids["RPM[-1]"] != "RPM__1__2" {
		t.Errorf("collided id = %q, want RPM__1__2", ids["RPM[-1]"])
	}

	// Same refs, same order, same answer.
	again := identifiersFor(refs)
	for k, v := range ids {
		if again[k] != v {
			t.Errorf("assignment not deterministic: %q = %q then %q", k, v, again[k])
		}
	}
}

func TestIdentifiersForDistinctStayUntouched(t *testing.T) {
	refs := []Reference{
		{Name: "Manifold Pressure", FullMatch: `"Manifold Pressure"`},
		{Name: "RPM", FullMatch: "RPM"},
	}
	ids := identifiersFor(refs)
	if ids["RPM"] != "RPM" {
		t.Errorf("bare name rewritten: %q", ids["RPM"])
	}
	if ids[`"Manifold Pressure"`] != "_Manifold_Pressure_" {
		t.Errorf("quoted name = %q, want _Manifold_Pressure_", ids[`"Manifold Pressure"`])
	}
}
