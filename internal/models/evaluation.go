package models

import "time"

// EvaluationDocument is the separate evaluation bundle: three base64 PDFs
// plus the evaluation number, appended once per operator.
type EvaluationDocument struct {
	ID           uint      `gorm:"primaryKey"`
	NIK          string    `gorm:"column:nik;size:8;index;not null"`
	UploadDate   time.Time `gorm:"not null"`
	OpTrainEval  string    `gorm:"type:text;not null"`
	OpSkillsEval string    `gorm:"type:text;not null"`
	TrainEval    string    `gorm:"type:text;not null"`
	EvalNumber   string    `gorm:"size:50;not null"`
	CreatedAt    time.Time
}

func (EvaluationDocument) TableName() string {
	return "t_evaluation_document"
}
