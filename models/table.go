package models

import "time"

// Table is a physical dining table. Number is the label printed on it and is
// not required to be numeric.
type Table struct {
	ID        uint      `gorm:"primaryKey"`
	Number    string    `gorm:"type:varchar(50);not null"`
	Capacity  int       `gorm:"not null"`
	Location  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
