package cert

import "strings"

// Verdict is the outcome of a station threshold rule. Indeterminate means at
// least one criterion has no usable value yet; it is not a failure.
type Verdict int

const (
	Indeterminate Verdict = iota
	Pass
	NotPass
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "Pass"
	case NotPass:
		return "Not Pass"
	default:
		return ""
	}
}

// VerdictFromResult maps a stored result string back to a Verdict. Anything
// unrecognized (including empty) is Indeterminate.
func VerdictFromResult(s string) Verdict {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pass":
		return Pass
	case "not pass":
		return NotPass
	default:
		return Indeterminate
	}
}
