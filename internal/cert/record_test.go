package cert

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func passingRecord(t *testing.T) *CertificationRecord {
	t.Helper()
	r, err := NewCertificationRecord("12345678", DocumentGate{MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("NewCertificationRecord: %v", err)
	}

	set := func(s Station, criterion, raw string) {
		if _, err := r.SetCriterion(s, criterion, raw); err != nil {
			t.Fatalf("SetCriterion(%v,%s): %v", s, criterion, err)
		}
	}
	set(Soldering, "written", "85")
	set(Soldering, "practical", "80")
	set(Screwing, "technique", "90")
	set(Screwing, "work", "88")
	set(Screening, "tiu", "16")
	set(Screening, "accuracy", "60")
	set(Screening, "heco", "85")
	set(Screening, "mcc", "82")
	set(MSA, "accuracy", "95")
	set(MSA, "missRate", "1")
	set(MSA, "falseAlarm", "3")
	set(MSA, "confidence", "92")

	if err := r.SelectProcess(ProcessOPT1); err != nil {
		t.Fatalf("SelectProcess: %v", err)
	}
	if err := r.SetActual("80"); err != nil {
		t.Fatalf("SetActual: %v", err)
	}

	for i, dt := range AllDocumentTypes {
		if err := r.SetDocumentNumber(dt, "DOC-00"+string(rune('1'+i))); err != nil {
			t.Fatalf("SetDocumentNumber: %v", err)
		}
		if err := r.SetTrainingDate(dt, date(2024, time.March, 10)); err != nil {
			t.Fatalf("SetTrainingDate: %v", err)
		}
		if err := r.AttachDocument(dt, pdfFile(500)); err != nil {
			t.Fatalf("AttachDocument: %v", err)
		}
	}
	return r
}

func TestValidateNIK(t *testing.T) {
	for _, bad := range []string{"", "1234567", "123456789", "12a45678", "1234 678"} {
		if err := ValidateNIK(bad); err == nil {
			t.Errorf("ValidateNIK(%q) should fail", bad)
		}
	}
	if err := ValidateNIK("00000001"); err != nil {
		t.Fatalf("ValidateNIK: %v", err)
	}
}

func TestOverallStatusNewUntilLoaded(t *testing.T) {
	r := passingRecord(t)
	if got := r.OverallStatus(); got != StatusNew {
		t.Fatalf("never-loaded record status = %v, want New", got)
	}
	r.MarkLoaded()
	if got := r.OverallStatus(); got != StatusPass {
		t.Fatalf("loaded all-pass record status = %v, want Pass", got)
	}
}

func TestOverallStatusNotYetOnAnyGap(t *testing.T) {
	r := passingRecord(t)
	r.MarkLoaded()
	// All stations pass but one training date is missing.
	if err := r.SetTrainingDate(DocSoldering, time.Time{}); err != nil {
		t.Fatalf("SetTrainingDate: %v", err)
	}
	if got := r.OverallStatus(); got != StatusNotYet {
		t.Fatalf("status = %v, want Not Yet", got)
	}
}

func TestCanSubmitViolationCount(t *testing.T) {
	r := passingRecord(t)
	if ok, violations := r.CanSubmit(); !ok || len(violations) != 0 {
		t.Fatalf("complete record: ok=%v violations=%v", ok, violations)
	}

	// Screwing fails and the MSA slot loses its file: exactly 2 violations.
	if _, err := r.SetCriterion(Screwing, "work", "79"); err != nil {
		t.Fatalf("SetCriterion: %v", err)
	}
	slot, _ := r.Document(DocMSA)
	slot.ClearFile()

	ok, violations := r.CanSubmit()
	if ok {
		t.Fatalf("expected submission block")
	}
	if len(violations) != 2 {
		t.Fatalf("violations = %v, want exactly 2", violations)
	}
	if violations[0] != "Screwing result is Not Pass or empty" {
		t.Errorf("first violation = %q", violations[0])
	}
	if violations[1] != "MSA certificate status is Not Yet" {
		t.Errorf("second violation = %q", violations[1])
	}
}

func TestSubmitBlockedEnumeratesEverything(t *testing.T) {
	r, err := NewCertificationRecord("87654321", DocumentGate{MaxBytes: 1 << 20})
	if err != nil {
		t.Fatalf("NewCertificationRecord: %v", err)
	}
	_, err = r.Submit()
	var se *SubmitError
	if !errors.As(err, &se) {
		t.Fatalf("want SubmitError, got %v", err)
	}
	// 5 stations + 3 document slots, all failing at once.
	if len(se.Violations) != 8 {
		t.Fatalf("violations = %d, want 8: %v", len(se.Violations), se.Violations)
	}
}

func TestSubmitPayloadShape(t *testing.T) {
	r := passingRecord(t)
	p, err := r.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if p.NIK != "12345678" || p.Status != "Pass" {
		t.Fatalf("nik=%q status=%q", p.NIK, p.Status)
	}
	for _, result := range []string{p.SolderingResult, p.ScrewingResult, p.DSResult, p.LSResult, p.MSAResult} {
		if result != "Pass" {
			t.Fatalf("result fields = %q, want Pass", result)
		}
	}
	if p.SolderingTrainDate != "2024-03-10" || p.SolderingExpDate != "2026-02-10" {
		t.Fatalf("dates %q / %q", p.SolderingTrainDate, p.SolderingExpDate)
	}
	if p.FileSoldering == "" || p.FileScrewing == "" || p.FileMSA == "" {
		t.Fatalf("file content missing from payload")
	}
	if a, _ := p.LSAchievement.Value(); a != 105.1 {
		t.Fatalf("achievement = %v", a)
	}
}

func TestLockBlocksEdits(t *testing.T) {
	r := passingRecord(t)
	r.MarkPersisted()

	if !r.Locked() {
		t.Fatalf("persisted record must be locked")
	}
	if _, err := r.SetCriterion(Soldering, "written", "99"); err != ErrRecordLocked {
		t.Fatalf("SetCriterion on locked record: %v", err)
	}
	if err := r.SelectProcess(ProcessOPT2); err != ErrRecordLocked {
		t.Fatalf("SelectProcess on locked record: %v", err)
	}
	if err := r.SetDocumentNumber(DocSoldering, "X"); err != ErrRecordLocked {
		t.Fatalf("SetDocumentNumber on locked record: %v", err)
	}
	if _, err := r.Submit(); err != ErrRecordLocked {
		t.Fatalf("re-submission must be blocked: %v", err)
	}

	// Locking again changes nothing.
	r.MarkPersisted()
	if !r.Locked() {
		t.Fatalf("lock must be idempotent")
	}
}

func TestRoundTripThroughPayload(t *testing.T) {
	original := passingRecord(t)
	p := original.BuildPayload()

	reloaded, err := RecordFromPayload(p, DocumentGate{})
	if err != nil {
		t.Fatalf("RecordFromPayload: %v", err)
	}
	reloaded.MarkLoaded()

	if got := reloaded.OverallStatus(); got != StatusPass {
		t.Fatalf("reloaded status = %v", got)
	}
	for _, s := range AllStations {
		if got, want := reloaded.StationVerdict(s), original.StationVerdict(s); got != want {
			t.Errorf("station %v verdict: got %v want %v", s, got, want)
		}
	}

	p2 := reloaded.BuildPayload()
	if !reflect.DeepEqual(p, p2) {
		t.Fatalf("payload not stable across reload:\n%+v\nvs\n%+v", p, p2)
	}
}

func TestRecordFromPayloadRejectsBadContent(t *testing.T) {
	p := passingRecord(t).BuildPayload()
	p.FileScrewing = "!!!not base64!!!"
	if _, err := RecordFromPayload(p, DocumentGate{}); !errors.Is(err, ErrInvalidBase64) {
		t.Fatalf("want ErrInvalidBase64, got %v", err)
	}

	p = passingRecord(t).BuildPayload()
	p.NIK = "12ab5678"
	if _, err := RecordFromPayload(p, DocumentGate{}); !errors.Is(err, ErrInvalidNIK) {
		t.Fatalf("want ErrInvalidNIK, got %v", err)
	}
}
