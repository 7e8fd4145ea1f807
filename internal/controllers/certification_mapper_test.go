package controllers

import (
	"testing"
	"time"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
)

func TestPayloadModelRoundTrip(t *testing.T) {
	p := cert.SubmitPayload{
		NIK:                "12345678",
		SolderingWritten:   cert.NewScore(85),
		SolderingPractical: cert.NewScore(90),
		SolderingResult:    "Pass",
		ScrewingTechnique:  cert.NewScore(88),
		ScrewingWork:       cert.NewScore(91),
		ScrewingResult:     "Pass",
		DSTiu:              cert.NewScore(20),
		DSAccu:             cert.NewScore(60),
		DSHeco:             cert.NewScore(85),
		DSMcc:              cert.NewScore(95),
		DSResult:           "Pass",
		Process:            "OPT#1",
		LSTarget:           cert.NewScore(84.1),
		LSActual:           cert.NewScore(80),
		LSAchievement:      cert.NewScore(105.1),
		LSResult:           "Pass",
		MSAAccuracy:        cert.NewScore(95),
		MSAMissRate:        cert.NewScore(1),
		MSAFalseAlarm:      cert.NewScore(2),
		MSAConfidence:      cert.NewScore(92),
		MSAResult:          "Pass",
		SolderingDocNo:     "SLD-001",
		SolderingTrainDate: "2024-03-10",
		SolderingExpDate:   "2026-02-10",
		Status:             "Pass",
	}

	m := payloadToModel(p)
	if m.NIK != "12345678" {
		t.Fatalf("nik = %q", m.NIK)
	}
	if m.SolderingWritten == nil || *m.SolderingWritten != 85 {
		t.Fatalf("soldering written = %v", m.SolderingWritten)
	}
	if m.SolderingTrainDate == nil || m.SolderingTrainDate.Format("2006-01-02") != "2024-03-10" {
		t.Fatalf("train date = %v", m.SolderingTrainDate)
	}
	if m.ScrewingTrainDate != nil {
		t.Fatalf("empty date should map to nil, got %v", m.ScrewingTrainDate)
	}

	back := modelToPayload(m)
	if back.NIK != p.NIK || back.Status != p.Status {
		t.Fatalf("round trip identity lost: %+v", back)
	}
	if v, ok := back.LSAchievement.Value(); !ok || v != 105.1 {
		t.Fatalf("achievement = %v %v", v, ok)
	}
	if back.SolderingExpDate != "2026-02-10" {
		t.Fatalf("exp date = %q", back.SolderingExpDate)
	}
	if back.ScrewingTrainDate != "" {
		t.Fatalf("nil date should map to empty string, got %q", back.ScrewingTrainDate)
	}
}

func TestPayloadModelUnsetScores(t *testing.T) {
	p := cert.SubmitPayload{NIK: "12345678", Status: "Not Yet"}
	m := payloadToModel(p)
	if m.SolderingWritten != nil || m.MSAConfidence != nil {
		t.Fatal("unset scores must persist as NULL")
	}
	back := modelToPayload(m)
	if back.SolderingWritten.IsSet() {
		t.Fatal("NULL column must come back as unset score")
	}
}

func TestCertificationResponseWrapsFiles(t *testing.T) {
	p := cert.SubmitPayload{
		NIK:           "12345678",
		FileSoldering: "JVBERi0xLjQ=",
		Status:        "Not Yet",
	}
	resp := certificationResponse(payloadToModel(p))
	got, _ := resp["file_soldering"].(string)
	want := "data:application/pdf;base64,JVBERi0xLjQ="
	if got != want {
		t.Fatalf("file_soldering = %q, want %q", got, want)
	}
	if empty, _ := resp["file_screwing"].(string); empty != "" {
		t.Fatalf("missing file should stay empty, got %q", empty)
	}
	if locked, _ := resp["locked"].(bool); !locked {
		t.Fatal("stored records must report locked")
	}
}

func TestParseDatePtr(t *testing.T) {
	if parseDatePtr("not-a-date") != nil {
		t.Fatal("garbage date must map to nil")
	}
	got := parseDatePtr("2024-02-29")
	if got == nil || !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %v", got)
	}
}
