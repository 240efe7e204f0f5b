package models

import (
	"time"
)

// User is an identity record. Credentials are set once at signup and never
// changed by this service.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	Username     string    `gorm:"size:255;not null;unique" json:"username"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
	Loans        []Loan    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
