package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/danuwg/opcert_backend_v1/internal/config"
	"github.com/danuwg/opcert_backend_v1/internal/models"
	"github.com/danuwg/opcert_backend_v1/internal/utils"
)

func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		UserID:   uuid.NewString(),
		FullName: cfg.AdminFullName,
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     "admin",
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("seeded initial admin")
	return nil
}

// SeedSampleOperators loads a handful of operators for development setups so
// the lookup and certification flow can be exercised without the HR master
// import.
func SeedSampleOperators(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Operator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	end := time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC)
	operators := []models.Operator{
		{NIK: "10000001", Name: "Rina Hartati", Line: "Line 1", ContractStatus: "Contract", EndContractDate: &end, Level: "Operator"},
		{NIK: "10000002", Name: "Budi Santoso", Line: "Line 2", ContractStatus: "Permanent", Level: "Senior Operator"},
		{NIK: "10000003", Name: "Sari Wulandari", Line: "Line 1", ContractStatus: "Contract", EndContractDate: &end, Level: "Operator"},
	}
	if err := db.Create(&operators).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(operators)).Msg("seeded sample operators")
	return nil
}
