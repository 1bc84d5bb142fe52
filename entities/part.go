package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Part struct {
	ID           string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string  `gorm:"uniqueIndex;not null" json:"nome" validate:"required"`
	Manufacturer string  `gorm:"not null" json:"fabricante" validate:"required"`
	Price        float64 `json:"preco" validate:"gte=0"`
}

func (p *Part) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (p *Part) Snapshot() PartSnapshot {
	return PartSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Price:        p.Price,
	}
}

type PartUpdate struct {
	Name         *string  `json:"nome" validate:"omitnil,min=1"`
	Manufacturer *string  `json:"fabricante" validate:"omitnil,min=1"`
	Price        *float64 `json:"preco" validate:"omitnil,gte=0"`
}

func (u PartUpdate) IsEmpty() bool {
	return u.Name == nil && u.Manufacturer == nil && u.Price == nil
}

func (u PartUpdate) Apply(p *Part) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Manufacturer != nil {
		p.Manufacturer = *u.Manufacturer
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
}
