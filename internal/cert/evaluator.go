package cert

// ChangeFunc is notified after an edit with the affected station and its
// recomputed verdict. A single edit produces exactly one notification.
type ChangeFunc func(Station, Verdict)

// StationEvaluator bridges raw per-field edits and the displayed verdicts.
// Each edit touches only the affected station's reading and re-evaluates
// only that station.
type StationEvaluator struct {
	readings map[Station]*StationReading
	onChange ChangeFunc
}

func NewStationEvaluator(onChange ChangeFunc) *StationEvaluator {
	e := &StationEvaluator{
		readings: make(map[Station]*StationReading, len(ScoredStations)),
		onChange: onChange,
	}
	for _, s := range ScoredStations {
		r, _ := NewStationReading(s)
		e.readings[s] = r
	}
	return e
}

func (e *StationEvaluator) Reading(s Station) (*StationReading, bool) {
	r, ok := e.readings[s]
	return r, ok
}

func (e *StationEvaluator) Verdict(s Station) Verdict {
	r, ok := e.readings[s]
	if !ok {
		return Indeterminate
	}
	return Evaluate(r)
}

// SetCriterion records one edited value. Non-numeric text unsets the
// criterion, which is reflected as an Indeterminate verdict, not an error.
func (e *StationEvaluator) SetCriterion(s Station, criterion, raw string) (Verdict, error) {
	r, ok := e.readings[s]
	if !ok {
		return Indeterminate, ErrUnknownStation
	}
	if err := r.Set(criterion, ParseScore(raw)); err != nil {
		return Indeterminate, err
	}
	v := Evaluate(r)
	e.notify(s, v)
	return v, nil
}

// Load rewrites a station's reading in one step, as when a stored record is
// displayed. Criteria absent from scores are unset.
func (e *StationEvaluator) Load(s Station, scores map[string]Score) error {
	r, ok := e.readings[s]
	if !ok {
		return ErrUnknownStation
	}
	r.Clear()
	for name, sc := range scores {
		if err := r.Set(name, sc); err != nil {
			return err
		}
	}
	e.notify(s, Evaluate(r))
	return nil
}

func (e *StationEvaluator) notify(s Station, v Verdict) {
	if e.onChange != nil {
		e.onChange(s, v)
	}
}
