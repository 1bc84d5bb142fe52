package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Technician struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string  `gorm:"uniqueIndex;not null" json:"nome" validate:"required"`
	Specialty string  `gorm:"not null" json:"especialidade" validate:"required"`
	Contact   string  `gorm:"not null" json:"contato" validate:"required"`
	Salary    float64 `json:"salario" validate:"gte=0"`
}

func (t *Technician) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}

func (t *Technician) Snapshot() TechnicianSnapshot {
	return TechnicianSnapshot{
		ID:        t.ID,
		Name:      t.Name,
		Specialty: t.Specialty,
		Contact:   t.Contact,
		Salary:    t.Salary,
	}
}

type TechnicianUpdate struct {
	Name      *string  `json:"nome" validate:"omitnil,min=1"`
	Specialty *string  `json:"especialidade" validate:"omitnil,min=1"`
	Contact   *string  `json:"contato" validate:"omitnil,min=1"`
	Salary    *float64 `json:"salario" validate:"omitnil,gte=0"`
}

func (u TechnicianUpdate) IsEmpty() bool {
	return u.Name == nil && u.Specialty == nil && u.Contact == nil && u.Salary == nil
}

func (u TechnicianUpdate) Apply(t *Technician) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Specialty != nil {
		t.Specialty = *u.Specialty
	}
	if u.Contact != nil {
		t.Contact = *u.Contact
	}
	if u.Salary != nil {
		t.Salary = *u.Salary
	}
}
