package cert

// LockState is either Editable or Locked. The transition is one way: once a
// record (or the evaluation bundle) is persisted it never unlocks; only a
// fresh load of the persisted data shows it again, read-only.
type LockState int

const (
	Editable LockState = iota
	Locked
)

func (s LockState) String() string {
	if s == Locked {
		return "Locked"
	}
	return "Editable"
}

// LockController guards a form's editability. Lock is idempotent and there
// is deliberately no unlock.
type LockController struct {
	state LockState
}

func (l *LockController) Lock() {
	l.state = Locked
}

func (l *LockController) Locked() bool {
	return l.state == Locked
}

func (l *LockController) State() LockState {
	return l.state
}
