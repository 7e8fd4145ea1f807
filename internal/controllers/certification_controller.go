package controllers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
	"github.com/danuwg/opcert_backend_v1/internal/models"
	"github.com/danuwg/opcert_backend_v1/internal/ws"
)

type CertificationController struct {
	DB   *gorm.DB
	Hub  *ws.StatusHub
	Gate cert.DocumentGate

	// One save per NIK at a time. Guards a double-click or a retried
	// request from racing itself; it is not a cross-session version check.
	saving sync.Map
}

// Get returns the latest certification for an operator, files wrapped as
// data URIs. Missing record is the expected empty-form case.
func (cc *CertificationController) Get(c *gin.Context) {
	nik := c.Param("nik")
	if err := cert.ValidateNIK(nik); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row models.CertificationRecord
	err := cc.DB.Where("nik = ?", nik).Order("created_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certification record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, certificationResponse(row))
}

// Create accepts the flat submit payload, re-runs the whole evaluation
// server-side and persists only when every station and certificate passes.
// The client's result/status strings are recomputed, never trusted.
func (cc *CertificationController) Create(c *gin.Context) {
	var payload cert.SubmitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := cert.ValidateNIK(payload.NIK); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, inFlight := cc.saving.LoadOrStore(payload.NIK, struct{}{}); inFlight {
		c.JSON(http.StatusConflict, gin.H{"error": "a save for this operator is already in progress"})
		return
	}
	defer cc.saving.Delete(payload.NIK)

	// A persisted record locks the form for good; there is no re-submit.
	var existing models.CertificationRecord
	if err := cc.DB.Where("nik = ?", payload.NIK).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": cert.ErrRecordLocked.Error()})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record, err := cert.RecordFromPayload(payload, cc.Gate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submit, err := record.Submit()
	if err != nil {
		var se *cert.SubmitError
		if errors.As(err, &se) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "cannot save, the following items must be Pass",
				"violations": se.Violations,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := payloadToModel(submit)
	if err := cc.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	record.MarkPersisted()

	log.Info().Str("nik", submit.NIK).Str("status", submit.Status).Msg("certification saved")
	cc.Hub.Broadcast(ws.StatusPayload{
		NIK:        submit.NIK,
		Status:     submit.Status,
		FormStatus: cert.FormStatus(true, false),
		SavedAt:    time.Now(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "certification saved successfully",
		"id":      row.ID,
		"status":  submit.Status,
	})
}

// uploadRequest carries one certificate slot. The slot is detected from
// whichever file_* field is present, matching the legacy upload call.
type uploadRequest struct {
	Status string `json:"status"`

	SolderingDocNo     string `json:"soldering_docno"`
	SolderingTrainDate string `json:"soldering_traindate"`
	FileSoldering      string `json:"file_soldering"`

	ScrewingDocNo     string `json:"screwing_docno"`
	ScrewingTrainDate string `json:"screwing_traindate"`
	FileScrewing      string `json:"file_screwing"`

	MSADocNo     string `json:"msa_docno"`
	MSATrainDate string `json:"msa_traindate"`
	FileMSA      string `json:"file_msa"`
}

func (r *uploadRequest) slot() (cert.DocumentType, string, string, string, bool) {
	switch {
	case r.FileSoldering != "":
		return cert.DocSoldering, r.SolderingDocNo, r.SolderingTrainDate, r.FileSoldering, true
	case r.FileScrewing != "":
		return cert.DocScrewing, r.ScrewingDocNo, r.ScrewingTrainDate, r.FileScrewing, true
	case r.FileMSA != "":
		return cert.DocMSA, r.MSADocNo, r.MSATrainDate, r.FileMSA, true
	default:
		return 0, "", "", "", false
	}
}

// UploadDocument stores one certificate file on the already-saved record.
// Each slot accepts content once; a filled slot is part of the locked
// record and stays as it is.
func (cc *CertificationController) UploadDocument(c *gin.Context) {
	nik := c.Param("nik")
	if err := cert.ValidateNIK(nik); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	docType, docNo, trainDate, fileB64, ok := req.slot()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file_* field found in payload"})
		return
	}

	content, err := cert.DecodeBase64(fileB64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attachment := cert.FileAttachment{
		Name:      docType.String() + ".pdf",
		MediaType: cert.PDFMediaType,
		Size:      int64(len(content)),
		Content:   content,
	}
	if err := cc.Gate.Check(attachment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row models.CertificationRecord
	if err := cc.DB.Where("nik = ?", nik).Order("created_at DESC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certification record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	encoded := cert.EncodeBase64(content)
	train := parseDatePtr(trainDate)
	var exp *time.Time
	if train != nil {
		e := cert.ComputeExpiry(*train)
		exp = &e
	}

	switch docType {
	case cert.DocSoldering:
		if row.FileSoldering != "" {
			c.JSON(http.StatusConflict, gin.H{"error": "soldering document already uploaded"})
			return
		}
		row.FileSoldering = encoded
		row.SolderingDocNo = docNo
		row.SolderingTrainDate = train
		row.SolderingExpDate = exp
	case cert.DocScrewing:
		if row.FileScrewing != "" {
			c.JSON(http.StatusConflict, gin.H{"error": "screwing document already uploaded"})
			return
		}
		row.FileScrewing = encoded
		row.ScrewingDocNo = docNo
		row.ScrewingTrainDate = train
		row.ScrewingExpDate = exp
	case cert.DocMSA:
		if row.FileMSA != "" {
			c.JSON(http.StatusConflict, gin.H{"error": "MSA document already uploaded"})
			return
		}
		row.FileMSA = encoded
		row.MSADocNo = docNo
		row.MSATrainDate = train
		row.MSAExpDate = exp
	}
	if req.Status != "" {
		row.Status = req.Status
	}

	if err := cc.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": docType.String() + " file saved"})
}
