package models

import "time"

// Operator mirrors the TM_Operator master table. NIK is the 8-digit badge
// number used everywhere as the subject key.
type Operator struct {
	NIK             string `gorm:"column:nik;primaryKey;size:8"`
	Name            string `gorm:"size:50;not null"`
	Line            string `gorm:"size:20;not null"`
	ContractStatus  string `gorm:"size:10"`
	EndContractDate *time.Time
	Level           string `gorm:"size:50"`
	Photo           []byte
}

func (Operator) TableName() string {
	return "tm_operator"
}
