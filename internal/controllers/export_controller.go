package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/models"
)

type ExportController struct {
	DB *gorm.DB
}

var exportHeaders = []string{
	"NIK", "Name", "Line",
	"Soldering Written", "Soldering Practical", "Soldering Result",
	"Screwing Technique", "Screwing Work", "Screwing Result",
	"DS TIU", "DS Accuracy", "DS Helmet Confusion", "DS MCC", "DS Result",
	"Process", "LS Target", "LS Actual", "LS Achievement", "LS Result",
	"MSA Accuracy", "MSA Miss Rate", "MSA False Alarm", "MSA Confidence", "MSA Result",
	"Soldering Cert No", "Soldering Expiry",
	"Screwing Cert No", "Screwing Expiry",
	"MSA Cert No", "MSA Expiry",
	"Status", "Saved At",
}

func cellFloat(p *float64) interface{} {
	if p == nil {
		return ""
	}
	return *p
}

// Certifications writes every certification record to a spreadsheet for the
// HRD recap. Operator names come from a second query keyed by NIK.
func (xc *ExportController) Certifications(c *gin.Context) {
	var rows []models.CertificationRecord
	if err := xc.DB.Order("nik").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var operators []models.Operator
	if err := xc.DB.Find(&operators).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	names := make(map[string]models.Operator, len(operators))
	for _, op := range operators {
		names[op.NIK] = op
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Certifications"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		op := names[row.NIK]
		values := []interface{}{
			row.NIK, op.Name, op.Line,
			cellFloat(row.SolderingWritten), cellFloat(row.SolderingPractical), row.SolderingResult,
			cellFloat(row.ScrewingTechnique), cellFloat(row.ScrewingWork), row.ScrewingResult,
			cellFloat(row.DSTiu), cellFloat(row.DSAccu), cellFloat(row.DSHeco), cellFloat(row.DSMcc), row.DSResult,
			row.Process, cellFloat(row.LSTarget), cellFloat(row.LSActual), cellFloat(row.LSAchievement), row.LSResult,
			cellFloat(row.MSAAccuracy), cellFloat(row.MSAMissRate), cellFloat(row.MSAFalseAlarm), cellFloat(row.MSAConfidence), row.MSAResult,
			row.SolderingDocNo, dateString(row.SolderingExpDate),
			row.ScrewingDocNo, dateString(row.ScrewingExpDate),
			row.MSADocNo, dateString(row.MSAExpDate),
			row.Status, row.CreatedAt.Format(dateLayout),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 14)

	filename := fmt.Sprintf("certifications_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
