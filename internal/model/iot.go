package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SensorReading is one observation reported by a kitchen device. Alert
// is derived at ingestion time and stored with the reading.
type SensorReading struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	DeviceID  string    `gorm:"size:100;not null;index" json:"deviceId"`
	Gas       float64   `gorm:"default:0" json:"gas"`
	Weight    float64   `gorm:"default:0" json:"weight"`
	Fire      bool      `gorm:"default:false" json:"fire"`
	Alert     string    `gorm:"size:255" json:"alert,omitempty"`
}

func (r *SensorReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Device is a registered sensor allowed to submit readings. The shared
// secret is stored as a bcrypt hash, never in the clear.
type Device struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	DeviceID   string    `gorm:"size:100;not null;uniqueIndex" json:"deviceId"`
	Name       string    `gorm:"size:255" json:"name"`
	SecretHash string    `gorm:"size:255;not null" json:"-"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
