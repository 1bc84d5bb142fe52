package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device is a piece of equipment brought in for repair.
type Device struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Model        string `gorm:"uniqueIndex;not null" json:"modelo" validate:"required"`
	Type         string `gorm:"not null" json:"tipo" validate:"required"`
	Manufacturer string `gorm:"not null" json:"fabricante" validate:"required"`
}

func (d *Device) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}

// Snapshot copies the device's current values for embedding in a service.
func (d *Device) Snapshot() DeviceSnapshot {
	return DeviceSnapshot{
		ID:           d.ID,
		Model:        d.Model,
		Type:         d.Type,
		Manufacturer: d.Manufacturer,
	}
}

// DeviceUpdate carries the fields a client may change on a device.
type DeviceUpdate struct {
	Model        *string `json:"modelo" validate:"omitnil,min=1"`
	Type         *string `json:"tipo" validate:"omitnil,min=1"`
	Manufacturer *string `json:"fabricante" validate:"omitnil,min=1"`
}

func (u DeviceUpdate) IsEmpty() bool {
	return u.Model == nil && u.Type == nil && u.Manufacturer == nil
}

// Apply overwrites only the fields present in the update.
func (u DeviceUpdate) Apply(d *Device) {
	if u.Model != nil {
		d.Model = *u.Model
	}
	if u.Type != nil {
		d.Type = *u.Type
	}
	if u.Manufacturer != nil {
		d.Manufacturer = *u.Manufacturer
	}
}
