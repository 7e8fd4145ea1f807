package cert

import "testing"

func reading(t *testing.T, s Station, values map[string]string) *StationReading {
	t.Helper()
	r, err := NewStationReading(s)
	if err != nil {
		t.Fatalf("NewStationReading(%v): %v", s, err)
	}
	for name, raw := range values {
		if err := r.Set(name, ParseScore(raw)); err != nil {
			t.Fatalf("Set(%q): %v", name, err)
		}
	}
	return r
}

func TestSolderingThresholds(t *testing.T) {
	cases := []struct {
		written, practical string
		want               Verdict
	}{
		{"85", "79", NotPass},
		{"80", "80", Pass},
		{"", "90", Indeterminate},
		{"abc", "90", Indeterminate},
		{"79.9", "100", NotPass},
		{"100", "100", Pass},
	}
	for _, c := range cases {
		r := reading(t, Soldering, map[string]string{"written": c.written, "practical": c.practical})
		if got := Evaluate(r); got != c.want {
			t.Errorf("soldering written=%q practical=%q: got %v want %v", c.written, c.practical, got, c.want)
		}
	}
}

func TestScrewingThresholds(t *testing.T) {
	r := reading(t, Screwing, map[string]string{"technique": "80", "work": "80"})
	if got := Evaluate(r); got != Pass {
		t.Fatalf("boundary 80/80 should pass, got %v", got)
	}
	r = reading(t, Screwing, map[string]string{"technique": "90", "work": "79"})
	if got := Evaluate(r); got != NotPass {
		t.Fatalf("work below threshold should not pass, got %v", got)
	}
}

func TestScreeningThresholds(t *testing.T) {
	pass := map[string]string{"tiu": "14", "accuracy": "55", "heco": "80", "mcc": "80"}
	if got := Evaluate(reading(t, Screening, pass)); got != Pass {
		t.Fatalf("boundary screening should pass, got %v", got)
	}

	fail := map[string]string{"tiu": "13", "accuracy": "90", "heco": "95", "mcc": "95"}
	if got := Evaluate(reading(t, Screening, fail)); got != NotPass {
		t.Fatalf("tiu below 14 should not pass, got %v", got)
	}

	partial := map[string]string{"tiu": "20", "accuracy": "90", "heco": "95"}
	if got := Evaluate(reading(t, Screening, partial)); got != Indeterminate {
		t.Fatalf("missing mcc should be indeterminate, got %v", got)
	}
}

func TestMSAThresholds(t *testing.T) {
	cases := []struct {
		values map[string]string
		want   Verdict
	}{
		// MissRate and falseAlarm are upper bounds; boundaries pass.
		{map[string]string{"accuracy": "90", "missRate": "2", "falseAlarm": "5", "confidence": "90"}, Pass},
		{map[string]string{"accuracy": "95", "missRate": "3", "falseAlarm": "1", "confidence": "95"}, NotPass},
		{map[string]string{"accuracy": "95", "missRate": "1", "falseAlarm": "6", "confidence": "95"}, NotPass},
		{map[string]string{"accuracy": "89", "missRate": "0", "falseAlarm": "0", "confidence": "99"}, NotPass},
		{map[string]string{"accuracy": "95", "missRate": "1", "falseAlarm": "1", "confidence": ""}, Indeterminate},
	}
	for i, c := range cases {
		if got := Evaluate(reading(t, MSA, c.values)); got != c.want {
			t.Errorf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

func TestIndeterminateNeverFailColored(t *testing.T) {
	r := reading(t, Soldering, map[string]string{"written": "", "practical": ""})
	if got := Evaluate(r); got != Indeterminate {
		t.Fatalf("empty reading: got %v", got)
	}
	// Indeterminate renders as an empty result field, never "Not Pass".
	if s := Evaluate(r).String(); s != "" {
		t.Fatalf("indeterminate should render empty, got %q", s)
	}
}
