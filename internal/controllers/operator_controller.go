package controllers

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/cert"
	"github.com/danuwg/opcert_backend_v1/internal/models"
)

type OperatorController struct {
	DB *gorm.DB
}

// List serves the operator picker table: server-side search and paging in
// the DataTables request/response shape.
func (oc *OperatorController) List(c *gin.Context) {
	search := c.Query("search")
	start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
	length, _ := strconv.Atoi(c.DefaultQuery("length", "10"))
	if start < 0 {
		start = 0
	}
	if length <= 0 || length > 100 {
		length = 10
	}

	var total int64
	if err := oc.DB.Model(&models.Operator{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	q := oc.DB.Model(&models.Operator{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("nik ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var filtered int64
	if err := q.Count(&filtered).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var operators []models.Operator
	if err := q.Order("nik").Offset(start).Limit(length).Find(&operators).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := make([]gin.H, 0, len(operators))
	for _, op := range operators {
		data = append(data, gin.H{"nik": op.NIK, "name": op.Name})
	}
	c.JSON(http.StatusOK, gin.H{
		"data":            data,
		"recordsTotal":    total,
		"recordsFiltered": filtered,
	})
}

// Get returns the operator profile with their latest certification and the
// overall form status. A missing operator is a normal 404, not a fault.
func (oc *OperatorController) Get(c *gin.Context) {
	nik := c.Param("nik")
	if err := cert.ValidateNIK(nik); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var op models.Operator
	if err := oc.DB.First(&op, "nik = ?", nik).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "operator not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var photo string
	if len(op.Photo) > 0 {
		photo = base64.StdEncoding.EncodeToString(op.Photo)
	}

	var certRow models.CertificationRecord
	certFound := oc.DB.Where("nik = ?", nik).Order("created_at DESC").First(&certRow).Error == nil

	var evalRow models.EvaluationDocument
	evalFound := oc.DB.Where("nik = ?", nik).Order("created_at DESC").First(&evalRow).Error == nil
	evalComplete := evalFound &&
		evalRow.OpTrainEval != "" && evalRow.OpSkillsEval != "" &&
		evalRow.TrainEval != "" && evalRow.EvalNumber != ""

	resp := gin.H{
		"nik":               op.NIK,
		"name":              op.Name,
		"line":              op.Line,
		"job_level":         op.Level,
		"contract_status":   op.ContractStatus,
		"end_contract_date": dateString(op.EndContractDate),
		"photo":             photo,
		"form_status":       cert.FormStatus(certFound, evalComplete),
	}
	if certFound {
		resp["certification"] = certificationResponse(certRow)
	} else {
		resp["certification"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

// Photo serves the stored image bytes directly.
func (oc *OperatorController) Photo(c *gin.Context) {
	nik := c.Param("nik")
	if err := cert.ValidateNIK(nik); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var op models.Operator
	if err := oc.DB.First(&op, "nik = ?", nik).Error; err != nil || len(op.Photo) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", op.Photo)
}
