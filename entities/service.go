package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is a repair job. Device, technician and parts are embedded as
// snapshots taken when they were attached, so later edits to those records
// do not change the service.
type Service struct {
	ID           string                                 `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ServiceType  string                                 `gorm:"uniqueIndex:idx_service_type_description;not null" json:"tipo_de_servico"`
	Description  string                                 `gorm:"uniqueIndex:idx_service_type_description;not null" json:"descricao"`
	Value        float64                                `json:"valor"`
	RegisteredAt time.Time                              `gorm:"not null" json:"cadastrado_em"`
	DeviceID     string                                 `gorm:"index;type:varchar(36)" json:"-"`
	TechnicianID string                                 `gorm:"index;type:varchar(36)" json:"-"`
	Device       datatypes.JSONType[DeviceSnapshot]     `gorm:"type:jsonb" json:"dispositivo"`
	Technician   datatypes.JSONType[TechnicianSnapshot] `gorm:"type:jsonb" json:"tecnico"`
	PartsUsed    datatypes.JSONSlice[PartSnapshot]      `gorm:"type:jsonb;not null;default:'[]'" json:"pecas_ids"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.PartsUsed == nil {
		s.PartsUsed = datatypes.JSONSlice[PartSnapshot]{}
	}
	return
}

// ServiceUpdate lists the mutable fields of a service. Registration time and
// the embedded snapshots are fixed at creation.
type ServiceUpdate struct {
	ServiceType *string  `json:"tipo_de_servico" validate:"omitnil,min=1"`
	Description *string  `json:"descricao" validate:"omitnil,min=1"`
	Value       *float64 `json:"valor" validate:"omitnil,gte=0"`
}

func (u ServiceUpdate) IsEmpty() bool {
	return u.ServiceType == nil && u.Description == nil && u.Value == nil
}

func (u ServiceUpdate) Apply(s *Service) {
	if u.ServiceType != nil {
		s.ServiceType = *u.ServiceType
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.Value != nil {
		s.Value = *u.Value
	}
}
