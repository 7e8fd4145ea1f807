package cert

import "math"

// Process is a line simulation option with a fixed cycle-time target.
type Process string

const (
	ProcessOPT1 Process = "OPT#1"
	ProcessOPT2 Process = "OPT#2"
	ProcessOPT3 Process = "OPT#3"
	ProcessOPT4 Process = "OPT#4"
)

var processTargets = map[Process]float64{
	ProcessOPT1: 84.1,
	ProcessOPT2: 66.8,
	ProcessOPT3: 126.3,
	ProcessOPT4: 204.4,
}

// ProcessTarget returns the fixed target for a process.
func ProcessTarget(p Process) (float64, bool) {
	t, ok := processTargets[p]
	return t, ok
}

// LineSimulationRecord derives its verdict from throughput rather than
// entered scores. Changing the process always resets the actual value and
// the achievement.
type LineSimulationRecord struct {
	process     Process
	target      Score
	actual      Score
	achievement Score
}

func NewLineSimulationRecord() *LineSimulationRecord {
	return &LineSimulationRecord{}
}

// SelectProcess sets the target for the chosen option and clears the rest.
// An empty process clears the whole record.
func (l *LineSimulationRecord) SelectProcess(p Process) error {
	l.actual = Score{}
	l.achievement = Score{}

	if p == "" {
		l.process = ""
		l.target = Score{}
		return nil
	}

	target, ok := processTargets[p]
	if !ok {
		l.process = ""
		l.target = Score{}
		return ErrUnknownProcess
	}
	l.process = p
	l.target = NewScore(target)
	return nil
}

// SetActual records the measured value and recomputes the achievement:
// target / actual x 100, one decimal. Unset or zero actual clears it.
func (l *LineSimulationRecord) SetActual(actual Score) {
	l.actual = actual

	target, targetSet := l.target.Value()
	v, actualSet := actual.Value()
	if !targetSet || !actualSet || v == 0 {
		l.achievement = Score{}
		return
	}
	l.achievement = NewScore(math.Round(target/v*100*10) / 10)
}

func (l *LineSimulationRecord) Process() Process {
	return l.process
}

func (l *LineSimulationRecord) Target() Score {
	return l.target
}

func (l *LineSimulationRecord) Actual() Score {
	return l.actual
}

func (l *LineSimulationRecord) Achievement() Score {
	return l.achievement
}

// Verdict passes when the achievement reaches 100 percent.
func (l *LineSimulationRecord) Verdict() Verdict {
	a, ok := l.achievement.Value()
	if !ok {
		return Indeterminate
	}
	if a >= 100 {
		return Pass
	}
	return NotPass
}
