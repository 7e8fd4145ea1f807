package cert

import "testing"

func TestLockControllerOneWay(t *testing.T) {
	var l LockController
	if l.Locked() {
		t.Fatalf("fresh controller must be editable")
	}
	if l.State() != Editable {
		t.Fatalf("state = %v", l.State())
	}

	l.Lock()
	if !l.Locked() {
		t.Fatalf("lock did not take")
	}

	// Repeated triggers leave the state unchanged; there is no unlock.
	for i := 0; i < 3; i++ {
		l.Lock()
	}
	if l.State() != Locked {
		t.Fatalf("state = %v after repeated locks", l.State())
	}
}

func TestLockStateStrings(t *testing.T) {
	if Editable.String() != "Editable" || Locked.String() != "Locked" {
		t.Fatalf("unexpected state strings %q %q", Editable, Locked)
	}
}

func TestRecordAndBundleLocksIndependent(t *testing.T) {
	r := passingRecord(t)
	b, err := NewEvaluationBundle(r.NIK(), DocumentGate{MaxBytes: 10 << 20})
	if err != nil {
		t.Fatalf("NewEvaluationBundle: %v", err)
	}

	r.MarkPersisted()
	if b.Locked() {
		t.Fatalf("locking the record must not lock the evaluation bundle")
	}
	if err := b.SetEvalNumber("EV-77"); err != nil {
		t.Fatalf("bundle should still be editable: %v", err)
	}
}
