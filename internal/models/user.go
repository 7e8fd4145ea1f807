package models

import (
	"time"
)

// User is a back-office account. Roles: admin, hrd, iab.
type User struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"uniqueIndex"`
	FullName   string
	Email      string `gorm:"uniqueIndex"`
	Password   string
	Role       string
	Department string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
