package cert

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Score is a criterion value that may be unset. An unset score renders as an
// empty field and forces the owning station to Indeterminate.
type Score struct {
	value float64
	valid bool
}

func NewScore(v float64) Score {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Score{}
	}
	return Score{value: v, valid: true}
}

func NoScore() Score {
	return Score{}
}

// ParseScore reads user-entered text. Non-numeric input is simply unset,
// never an error.
func ParseScore(raw string) Score {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Score{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Score{}
	}
	return NewScore(v)
}

func (s Score) Value() (float64, bool) {
	return s.value, s.valid
}

func (s Score) IsSet() bool {
	return s.valid
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts a number, a numeric string, null, or an empty
// string. Clients send whatever their input fields hold.
func (s *Score) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = Score{}
		return nil
	}

	var str string
	if err := json.Unmarshal(trimmed, &str); err == nil {
		*s = ParseScore(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return err
	}
	*s = NewScore(num)
	return nil
}
