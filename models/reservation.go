package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID            uint      `gorm:"primaryKey"`
	Code          string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	TableID       uint      `gorm:"not null;index"`
	Table         Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CustomerName  string    `gorm:"type:varchar(255);not null"`
	CustomerPhone string    `gorm:"type:varchar(50)"`
	CustomerEmail string    `gorm:"type:varchar(255)"`
	PartySize     int       `gorm:"not null"`
	ReservedAt    time.Time `gorm:"not null;index"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// BeforeCreate assigns the public booking code.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Code == "" {
		r.Code = uuid.NewString()
	}
	return nil
}
