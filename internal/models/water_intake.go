package models

import "time"

// WaterIntake is a running milliliter counter per user. It only grows until
// the user explicitly resets it; there is no automatic day-boundary
// rollover.
type WaterIntake struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"uniqueIndex;not null"`
	Milliliters int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}
