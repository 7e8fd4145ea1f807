package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
	"github.com/danuwg/opcert_backend_v1/internal/models"
	"github.com/danuwg/opcert_backend_v1/internal/ws"
)

type EvaluationController struct {
	DB   *gorm.DB
	Hub  *ws.StatusHub
	Gate cert.DocumentGate
}

type evaluationSaveRequest struct {
	NIK          string `json:"nik" validate:"required,len=8,numeric"`
	EvalNumber   string `json:"eval_number" validate:"required"`
	OpTrainEval  string `json:"op_train_eval" validate:"required,b64file"`
	OpSkillsEval string `json:"op_skills_eval" validate:"required,b64file"`
	TrainEval    string `json:"train_eval" validate:"required,b64file"`
}

// Save stores the three evaluation documents in one shot. A complete bundle
// already on record cannot be replaced.
func (ec *EvaluationController) Save(c *gin.Context) {
	var req evaluationSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": validationMessages(err),
		})
		return
	}

	var existing models.EvaluationDocument
	if err := ec.DB.Where("nik = ?", req.NIK).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": cert.ErrBundleLocked.Error()})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bundle, err := cert.NewEvaluationBundle(req.NIK, ec.Gate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := bundle.SetEvalNumber(req.EvalNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := map[cert.EvaluationDoc]string{
		cert.OpTrainEval:  req.OpTrainEval,
		cert.OpSkillsEval: req.OpSkillsEval,
		cert.TrainEval:    req.TrainEval,
	}
	for _, doc := range cert.AllEvaluationDocs {
		content, err := cert.DecodeBase64(inputs[doc])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		err = bundle.Attach(doc, cert.FileAttachment{
			Name:      doc.String() + ".pdf",
			MediaType: cert.PDFMediaType,
			Size:      int64(len(content)),
			Content:   content,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": doc.String() + ": " + err.Error()})
			return
		}
	}
	if !bundle.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "evaluation bundle is incomplete"})
		return
	}

	row := models.EvaluationDocument{
		NIK:          req.NIK,
		UploadDate:   time.Now(),
		OpTrainEval:  cert.StripDataURI(req.OpTrainEval),
		OpSkillsEval: cert.StripDataURI(req.OpSkillsEval),
		TrainEval:    cert.StripDataURI(req.TrainEval),
		EvalNumber:   req.EvalNumber,
	}
	if err := ec.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	bundle.MarkPersisted()

	certExists := ec.DB.Where("nik = ?", req.NIK).
		First(&models.CertificationRecord{}).Error == nil

	log.Info().Str("nik", req.NIK).Str("eval_number", req.EvalNumber).Msg("evaluation bundle saved")
	ec.Hub.Broadcast(ws.StatusPayload{
		NIK:        req.NIK,
		Status:     "Pass",
		FormStatus: cert.FormStatus(certExists, true),
		SavedAt:    time.Now(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "evaluation documents saved successfully",
		"id":      row.ID,
	})
}

// Get returns the latest evaluation bundle for an operator, files wrapped
// as data URIs.
func (ec *EvaluationController) Get(c *gin.Context) {
	nik := c.Param("nik")
	if err := cert.ValidateNIK(nik); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var row models.EvaluationDocument
	err := ec.DB.Where("nik = ?", nik).Order("created_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "evaluation documents not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             row.ID,
		"nik":            row.NIK,
		"eval_number":    row.EvalNumber,
		"upload_date":    row.UploadDate.Format(dateLayout),
		"op_train_eval":  cert.PDFDataURI(row.OpTrainEval),
		"op_skills_eval": cert.PDFDataURI(row.OpSkillsEval),
		"train_eval":     cert.PDFDataURI(row.TrainEval),
		"locked":         true,
		"created_at":     row.CreatedAt,
	})
}
