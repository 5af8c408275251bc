package model

import (
	"time"
)

// Span is the database model for persisted spans. The duration value is kept
// in its canonical two-integer form.
type Span struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;uniqueIndex"`
	Seconds   int64     `gorm:"not null"`
	Months    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Span
func (Span) TableName() string {
	return "spans"
}
