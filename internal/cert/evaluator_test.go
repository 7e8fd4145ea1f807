package cert

import "testing"

func TestSetCriterionNotifiesAffectedStationOnly(t *testing.T) {
	var notified []Station
	e := NewStationEvaluator(func(s Station, v Verdict) {
		notified = append(notified, s)
	})

	if _, err := e.SetCriterion(Soldering, "written", "85"); err != nil {
		t.Fatalf("SetCriterion: %v", err)
	}
	if _, err := e.SetCriterion(MSA, "accuracy", "91"); err != nil {
		t.Fatalf("SetCriterion: %v", err)
	}

	if len(notified) != 2 || notified[0] != Soldering || notified[1] != MSA {
		t.Fatalf("notifications = %v, want [Soldering MSA]", notified)
	}
}

func TestSetCriterionRecomputesOnEveryEdit(t *testing.T) {
	e := NewStationEvaluator(nil)

	v, _ := e.SetCriterion(Soldering, "written", "80")
	if v != Indeterminate {
		t.Fatalf("half-filled station should be indeterminate, got %v", v)
	}
	v, _ = e.SetCriterion(Soldering, "practical", "80")
	if v != Pass {
		t.Fatalf("80/80 should pass, got %v", v)
	}
	v, _ = e.SetCriterion(Soldering, "practical", "79")
	if v != NotPass {
		t.Fatalf("79 should fail, got %v", v)
	}
	// Invalid text unsets the value; no error, no fail verdict.
	v, err := e.SetCriterion(Soldering, "practical", "7x")
	if err != nil {
		t.Fatalf("invalid text must not error: %v", err)
	}
	if v != Indeterminate {
		t.Fatalf("invalid text should yield indeterminate, got %v", v)
	}
}

func TestSetCriterionUnknownNames(t *testing.T) {
	e := NewStationEvaluator(nil)
	if _, err := e.SetCriterion(LineSimulation, "written", "80"); err != ErrUnknownStation {
		t.Fatalf("line simulation has no direct criteria: %v", err)
	}
	if _, err := e.SetCriterion(Soldering, "torque", "80"); err != ErrUnknownCriterion {
		t.Fatalf("want ErrUnknownCriterion, got %v", err)
	}
}

func TestLoadRewritesStationAtomically(t *testing.T) {
	e := NewStationEvaluator(nil)
	e.SetCriterion(Screening, "tiu", "20")
	e.SetCriterion(Screening, "accuracy", "70")

	// A load replaces every slot; criteria absent from the load are unset.
	if err := e.Load(Screening, map[string]Score{"tiu": NewScore(15)}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, _ := e.Reading(Screening)
	if r.Get("accuracy").IsSet() {
		t.Fatalf("load must clear values it does not carry")
	}
	if e.Verdict(Screening) != Indeterminate {
		t.Fatalf("partial load should be indeterminate")
	}
}
