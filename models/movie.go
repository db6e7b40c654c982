package models

import "time"

// Movie is owned by the user who created it; only that user may update or
// delete the record. ReleaseDate is a calendar date, stored without a time
// component.
type Movie struct {
	ID           uint      `gorm:"primaryKey"`
	MovieName    string    `gorm:"not null"`
	Description  string    `gorm:"not null"`
	DirectorName string    `gorm:"not null"`
	ReleaseDate  time.Time `gorm:"type:date;not null"`
	CreatedByID  uint      `gorm:"not null;index"`
	CreatedBy    User      `gorm:"foreignKey:CreatedByID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
