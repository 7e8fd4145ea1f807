package models

import "time"

// CertificationRecord is the persisted form of one submitted certification.
// Score columns are nullable so a stored row distinguishes "0" from "never
// entered"; file columns hold raw base64 text, the way the legacy system
// stored them.
type CertificationRecord struct {
	ID  uint   `gorm:"primaryKey"`
	NIK string `gorm:"column:nik;size:8;index;not null"`

	SolderingWritten   *float64
	SolderingPractical *float64
	SolderingResult    string `gorm:"size:10"`

	ScrewingTechnique *float64
	ScrewingWork      *float64
	ScrewingResult    string `gorm:"size:10"`

	DSTiu    *float64 `gorm:"column:ds_tiu"`
	DSAccu   *float64 `gorm:"column:ds_accu"`
	DSHeco   *float64 `gorm:"column:ds_heco"`
	DSMcc    *float64 `gorm:"column:ds_mcc"`
	DSResult string   `gorm:"column:ds_result;size:10"`

	Process       string   `gorm:"size:100"`
	LSTarget      *float64 `gorm:"column:ls_target"`
	LSActual      *float64 `gorm:"column:ls_actual"`
	LSAchievement *float64 `gorm:"column:ls_achievement"`
	LSResult      string   `gorm:"column:ls_result;size:10"`

	MSAAccuracy   *float64 `gorm:"column:msaa_accuracy"`
	MSAMissRate   *float64 `gorm:"column:msaa_missrate"`
	MSAFalseAlarm *float64 `gorm:"column:msaa_falsealarm"`
	MSAConfidence *float64 `gorm:"column:msaa_confidence"`
	MSAResult     string   `gorm:"column:msaa_result;size:10"`

	SolderingDocNo     string `gorm:"size:50"`
	SolderingTrainDate *time.Time
	SolderingExpDate   *time.Time

	ScrewingDocNo     string `gorm:"size:50"`
	ScrewingTrainDate *time.Time
	ScrewingExpDate   *time.Time

	MSADocNo     string `gorm:"column:msa_doc_no;size:50"`
	MSATrainDate *time.Time `gorm:"column:msa_train_date"`
	MSAExpDate   *time.Time `gorm:"column:msa_exp_date"`

	FileSoldering string `gorm:"type:text"`
	FileScrewing  string `gorm:"type:text"`
	FileMSA       string `gorm:"column:file_msa;type:text"`

	Status    string `gorm:"size:20;not null"`
	CreatedAt time.Time
}

func (CertificationRecord) TableName() string {
	return "t_certification_record"
}
