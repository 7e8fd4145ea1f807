package cert

// Station is one evaluation category with its own pass rule.
type Station int

const (
	Soldering Station = iota
	Screwing
	Screening
	LineSimulation
	MSA
)

// ScoredStations lists the stations backed by directly entered criteria.
// LineSimulation derives its verdict from the achievement calculation
// instead (see LineSimulationRecord).
var ScoredStations = []Station{Soldering, Screwing, Screening, MSA}

// AllStations is the submission-gate order used for violation messages.
var AllStations = []Station{Soldering, Screwing, Screening, LineSimulation, MSA}

func (s Station) String() string {
	switch s {
	case Soldering:
		return "Soldering"
	case Screwing:
		return "Screwing"
	case Screening:
		return "Data Screening"
	case LineSimulation:
		return "Line Simulation"
	case MSA:
		return "MSA Assessment"
	default:
		return "Unknown"
	}
}

var stationCriteria = map[Station][]string{
	Soldering: {"written", "practical"},
	Screwing:  {"technique", "work"},
	Screening: {"tiu", "accuracy", "heco", "mcc"},
	MSA:       {"accuracy", "missRate", "falseAlarm", "confidence"},
}

// Criteria returns the ordered criterion names for a scored station.
func Criteria(s Station) []string {
	names := stationCriteria[s]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// StationReading holds the current criterion values for one scored station.
// A load or clear always rewrites every slot; there is no partial state.
type StationReading struct {
	station Station
	scores  []Score
}

func NewStationReading(s Station) (*StationReading, error) {
	names, ok := stationCriteria[s]
	if !ok {
		return nil, ErrUnknownStation
	}
	return &StationReading{
		station: s,
		scores:  make([]Score, len(names)),
	}, nil
}

func (r *StationReading) Station() Station {
	return r.station
}

func (r *StationReading) Set(criterion string, score Score) error {
	idx := r.index(criterion)
	if idx < 0 {
		return ErrUnknownCriterion
	}
	r.scores[idx] = score
	return nil
}

func (r *StationReading) Get(criterion string) Score {
	idx := r.index(criterion)
	if idx < 0 {
		return Score{}
	}
	return r.scores[idx]
}

// Complete reports whether every criterion holds a finite number.
func (r *StationReading) Complete() bool {
	for _, s := range r.scores {
		if !s.IsSet() {
			return false
		}
	}
	return true
}

// Clear unsets every criterion at once.
func (r *StationReading) Clear() {
	r.scores = make([]Score, len(stationCriteria[r.station]))
}

func (r *StationReading) index(criterion string) int {
	for i, name := range stationCriteria[r.station] {
		if name == criterion {
			return i
		}
	}
	return -1
}
