package cert

import "testing"

func TestLineSimulationAchievement(t *testing.T) {
	ls := NewLineSimulationRecord()
	if err := ls.SelectProcess(ProcessOPT1); err != nil {
		t.Fatalf("SelectProcess: %v", err)
	}
	if target, _ := ls.Target().Value(); target != 84.1 {
		t.Fatalf("OPT#1 target = %v, want 84.1", target)
	}

	ls.SetActual(ParseScore("80"))
	a, ok := ls.Achievement().Value()
	if !ok || a != 105.1 {
		t.Fatalf("achievement = %v (%v), want 105.1", a, ok)
	}
	if ls.Verdict() != Pass {
		t.Fatalf("achievement >= 100 should pass")
	}

	ls.SetActual(ParseScore("90"))
	if a, _ := ls.Achievement().Value(); a != 93.4 {
		t.Fatalf("achievement = %v, want 93.4", a)
	}
	if ls.Verdict() != NotPass {
		t.Fatalf("achievement below 100 should not pass")
	}
}

func TestLineSimulationProcessChangeResets(t *testing.T) {
	ls := NewLineSimulationRecord()
	ls.SelectProcess(ProcessOPT2)
	ls.SetActual(ParseScore("60"))
	if !ls.Achievement().IsSet() {
		t.Fatalf("achievement should be set before the switch")
	}

	if err := ls.SelectProcess(ProcessOPT3); err != nil {
		t.Fatalf("SelectProcess: %v", err)
	}
	if ls.Actual().IsSet() || ls.Achievement().IsSet() {
		t.Fatalf("actual and achievement must reset when the process changes")
	}
	if ls.Verdict() != Indeterminate {
		t.Fatalf("reset record should be indeterminate")
	}
}

func TestLineSimulationZeroActual(t *testing.T) {
	ls := NewLineSimulationRecord()
	ls.SelectProcess(ProcessOPT4)
	ls.SetActual(ParseScore("0"))
	if ls.Achievement().IsSet() {
		t.Fatalf("zero actual must not divide")
	}
	ls.SetActual(ParseScore(""))
	if ls.Achievement().IsSet() || ls.Verdict() != Indeterminate {
		t.Fatalf("empty actual should clear the achievement")
	}
}

func TestLineSimulationUnknownProcess(t *testing.T) {
	ls := NewLineSimulationRecord()
	if err := ls.SelectProcess("OPT#9"); err != ErrUnknownProcess {
		t.Fatalf("want ErrUnknownProcess, got %v", err)
	}
	if ls.Target().IsSet() {
		t.Fatalf("unknown process must not leave a target behind")
	}

	if err := ls.SelectProcess(""); err != nil {
		t.Fatalf("clearing the selection should not error: %v", err)
	}
}
