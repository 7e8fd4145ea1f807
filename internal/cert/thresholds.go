package cert

// Threshold rules per station. Boundary values pass: "at least 80" admits
// exactly 80, "at most 2" admits exactly 2.

type thresholdRule struct {
	criterion string
	pass      func(float64) bool
}

func atLeast(limit float64) func(float64) bool {
	return func(v float64) bool { return v >= limit }
}

func atMost(limit float64) func(float64) bool {
	return func(v float64) bool { return v <= limit }
}

var stationRules = map[Station][]thresholdRule{
	Soldering: {
		{"written", atLeast(80)},
		{"practical", atLeast(80)},
	},
	Screwing: {
		{"technique", atLeast(80)},
		{"work", atLeast(80)},
	},
	Screening: {
		{"tiu", atLeast(14)},
		{"accuracy", atLeast(55)},
		{"heco", atLeast(80)},
		{"mcc", atLeast(80)},
	},
	MSA: {
		{"accuracy", atLeast(90)},
		{"missRate", atMost(2)},
		{"falseAlarm", atMost(5)},
		{"confidence", atLeast(90)},
	},
}

// Evaluate applies the station's rule to a reading. Any unset criterion
// yields Indeterminate regardless of the other values; a complete reading is
// Pass only when every criterion meets its threshold.
func Evaluate(r *StationReading) Verdict {
	rules, ok := stationRules[r.Station()]
	if !ok {
		return Indeterminate
	}

	verdict := Pass
	for _, rule := range rules {
		v, set := r.Get(rule.criterion).Value()
		if !set {
			return Indeterminate
		}
		if !rule.pass(v) {
			verdict = NotPass
		}
	}
	return verdict
}
