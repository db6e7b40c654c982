package models

import "time"

// User represents a registered account. Email uniqueness is enforced by the
// database index, not by an application-level existence check.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	UserName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}
