package controllers

import (
	"time"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
	"github.com/danuwg/opcert_backend_v1/internal/models"
)

const dateLayout = "2006-01-02"

func scorePtr(s cert.Score) *float64 {
	if v, ok := s.Value(); ok {
		return &v
	}
	return nil
}

func ptrScore(p *float64) cert.Score {
	if p == nil {
		return cert.NoScore()
	}
	return cert.NewScore(*p)
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDatePtr(s string) *time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// payloadToModel maps the engine's flat submit payload onto a storable row.
func payloadToModel(p cert.SubmitPayload) models.CertificationRecord {
	return models.CertificationRecord{
		NIK: p.NIK,

		SolderingWritten:   scorePtr(p.SolderingWritten),
		SolderingPractical: scorePtr(p.SolderingPractical),
		SolderingResult:    p.SolderingResult,

		ScrewingTechnique: scorePtr(p.ScrewingTechnique),
		ScrewingWork:      scorePtr(p.ScrewingWork),
		ScrewingResult:    p.ScrewingResult,

		DSTiu:    scorePtr(p.DSTiu),
		DSAccu:   scorePtr(p.DSAccu),
		DSHeco:   scorePtr(p.DSHeco),
		DSMcc:    scorePtr(p.DSMcc),
		DSResult: p.DSResult,

		Process:       p.Process,
		LSTarget:      scorePtr(p.LSTarget),
		LSActual:      scorePtr(p.LSActual),
		LSAchievement: scorePtr(p.LSAchievement),
		LSResult:      p.LSResult,

		MSAAccuracy:   scorePtr(p.MSAAccuracy),
		MSAMissRate:   scorePtr(p.MSAMissRate),
		MSAFalseAlarm: scorePtr(p.MSAFalseAlarm),
		MSAConfidence: scorePtr(p.MSAConfidence),
		MSAResult:     p.MSAResult,

		SolderingDocNo:     p.SolderingDocNo,
		SolderingTrainDate: parseDatePtr(p.SolderingTrainDate),
		SolderingExpDate:   parseDatePtr(p.SolderingExpDate),

		ScrewingDocNo:     p.ScrewingDocNo,
		ScrewingTrainDate: parseDatePtr(p.ScrewingTrainDate),
		ScrewingExpDate:   parseDatePtr(p.ScrewingExpDate),

		MSADocNo:     p.MSADocNo,
		MSATrainDate: parseDatePtr(p.MSATrainDate),
		MSAExpDate:   parseDatePtr(p.MSAExpDate),

		FileSoldering: cert.StripDataURI(p.FileSoldering),
		FileScrewing:  cert.StripDataURI(p.FileScrewing),
		FileMSA:       cert.StripDataURI(p.FileMSA),

		Status: p.Status,
	}
}

// modelToPayload rebuilds the flat shape from a stored row so the engine can
// re-derive verdicts on display.
func modelToPayload(m models.CertificationRecord) cert.SubmitPayload {
	return cert.SubmitPayload{
		NIK: m.NIK,

		SolderingWritten:   ptrScore(m.SolderingWritten),
		SolderingPractical: ptrScore(m.SolderingPractical),
		SolderingResult:    m.SolderingResult,

		ScrewingTechnique: ptrScore(m.ScrewingTechnique),
		ScrewingWork:      ptrScore(m.ScrewingWork),
		ScrewingResult:    m.ScrewingResult,

		DSTiu:    ptrScore(m.DSTiu),
		DSAccu:   ptrScore(m.DSAccu),
		DSHeco:   ptrScore(m.DSHeco),
		DSMcc:    ptrScore(m.DSMcc),
		DSResult: m.DSResult,

		Process:       m.Process,
		LSTarget:      ptrScore(m.LSTarget),
		LSActual:      ptrScore(m.LSActual),
		LSAchievement: ptrScore(m.LSAchievement),
		LSResult:      m.LSResult,

		MSAAccuracy:   ptrScore(m.MSAAccuracy),
		MSAMissRate:   ptrScore(m.MSAMissRate),
		MSAFalseAlarm: ptrScore(m.MSAFalseAlarm),
		MSAConfidence: ptrScore(m.MSAConfidence),
		MSAResult:     m.MSAResult,

		SolderingDocNo:     m.SolderingDocNo,
		SolderingTrainDate: dateString(m.SolderingTrainDate),
		SolderingExpDate:   dateString(m.SolderingExpDate),

		ScrewingDocNo:     m.ScrewingDocNo,
		ScrewingTrainDate: dateString(m.ScrewingTrainDate),
		ScrewingExpDate:   dateString(m.ScrewingExpDate),

		MSADocNo:     m.MSADocNo,
		MSATrainDate: dateString(m.MSATrainDate),
		MSAExpDate:   dateString(m.MSAExpDate),

		FileSoldering: m.FileSoldering,
		FileScrewing:  m.FileScrewing,
		FileMSA:       m.FileMSA,

		Status: m.Status,
	}
}

// certificationResponse is the display form: same fields, files wrapped as
// PDF data URIs for the viewer.
func certificationResponse(m models.CertificationRecord) map[string]interface{} {
	p := modelToPayload(m)
	return map[string]interface{}{
		"id":  m.ID,
		"nik": p.NIK,

		"soldering_written":   p.SolderingWritten,
		"soldering_practical": p.SolderingPractical,
		"soldering_result":    p.SolderingResult,

		"screwing_technique": p.ScrewingTechnique,
		"screwing_work":      p.ScrewingWork,
		"screwing_result":    p.ScrewingResult,

		"ds_tiu":    p.DSTiu,
		"ds_accu":   p.DSAccu,
		"ds_heco":   p.DSHeco,
		"ds_mcc":    p.DSMcc,
		"ds_result": p.DSResult,

		"process":        p.Process,
		"ls_target":      p.LSTarget,
		"ls_actual":      p.LSActual,
		"ls_achievement": p.LSAchievement,
		"ls_result":      p.LSResult,

		"msaa_accuracy":   p.MSAAccuracy,
		"msaa_missrate":   p.MSAMissRate,
		"msaa_falsealarm": p.MSAFalseAlarm,
		"msaa_confidence": p.MSAConfidence,
		"msaa_result":     p.MSAResult,

		"soldering_docno":     p.SolderingDocNo,
		"soldering_traindate": p.SolderingTrainDate,
		"soldering_expdate":   p.SolderingExpDate,

		"screwing_docno":     p.ScrewingDocNo,
		"screwing_traindate": p.ScrewingTrainDate,
		"screwing_expdate":   p.ScrewingExpDate,

		"msa_docno":     p.MSADocNo,
		"msa_traindate": p.MSATrainDate,
		"msa_expdate":   p.MSAExpDate,

		"file_soldering": cert.PDFDataURI(p.FileSoldering),
		"file_screwing":  cert.PDFDataURI(p.FileScrewing),
		"file_msa":       cert.PDFDataURI(p.FileMSA),

		"status":     p.Status,
		"locked":     true,
		"created_at": m.CreatedAt,
	}
}
