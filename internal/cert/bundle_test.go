package cert

import (
	"errors"
	"testing"
)

func TestEvaluationBundleCompleteness(t *testing.T) {
	b, err := NewEvaluationBundle("12345678", DocumentGate{MaxBytes: 10 << 20})
	if err != nil {
		t.Fatalf("NewEvaluationBundle: %v", err)
	}
	if b.Complete() {
		t.Fatalf("empty bundle cannot be complete")
	}

	if err := b.SetEvalNumber("EV-001"); err != nil {
		t.Fatalf("SetEvalNumber: %v", err)
	}
	for _, doc := range AllEvaluationDocs {
		if b.Complete() {
			t.Fatalf("bundle complete before %v attached", doc)
		}
		if err := b.Attach(doc, pdfFile(300)); err != nil {
			t.Fatalf("Attach(%v): %v", doc, err)
		}
	}
	if !b.Complete() {
		t.Fatalf("all documents and number present, bundle should be complete")
	}
}

func TestEvaluationBundleRejectionClearsSelection(t *testing.T) {
	b, _ := NewEvaluationBundle("12345678", DocumentGate{MaxBytes: 10 << 20})
	if err := b.Attach(OpTrainEval, pdfFile(100)); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	bad := pdfFile(100)
	bad.MediaType = "application/zip"
	if err := b.Attach(OpTrainEval, bad); !errors.Is(err, ErrNotPDF) {
		t.Fatalf("want ErrNotPDF, got %v", err)
	}
	if _, ok := b.File(OpTrainEval); ok {
		t.Fatalf("rejected file must clear the previous selection")
	}
}

func TestEvaluationBundleOneShotLock(t *testing.T) {
	b, _ := NewEvaluationBundle("12345678", DocumentGate{MaxBytes: 10 << 20})
	b.SetEvalNumber("EV-002")
	for _, doc := range AllEvaluationDocs {
		b.Attach(doc, pdfFile(100))
	}
	b.MarkPersisted()

	if !b.Locked() {
		t.Fatalf("persisted bundle must lock")
	}
	if err := b.SetEvalNumber("EV-003"); err != ErrBundleLocked {
		t.Fatalf("locked bundle edit: %v", err)
	}
	if err := b.Attach(TrainEval, pdfFile(100)); err != ErrBundleLocked {
		t.Fatalf("locked bundle attach: %v", err)
	}
}

func TestFormStatus(t *testing.T) {
	if got := FormStatus(false, false); got != "New" {
		t.Fatalf("no records: %q", got)
	}
	if got := FormStatus(true, false); got != "Closed" {
		t.Fatalf("cert only: %q", got)
	}
	if got := FormStatus(false, true); got != "Closed" {
		t.Fatalf("evaluation only: %q", got)
	}
}
