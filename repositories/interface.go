package repositories

import (
	"context"

	"repair-server/entities"
)

type DeviceRepository interface {
	Create(ctx context.Context, device *entities.Device) error
	GetByID(ctx context.Context, id string) (*entities.Device, error)
	GetByModel(ctx context.Context, model string) (*entities.Device, error)
	ExistsByModel(ctx context.Context, model string) (bool, error)
	GetAll(ctx context.Context) ([]entities.Device, error)
	Update(ctx context.Context, device *entities.Device) error
	Delete(ctx context.Context, id string) error
}

type PartRepository interface {
	Create(ctx context.Context, part *entities.Part) error
	GetByID(ctx context.Context, id string) (*entities.Part, error)
	GetByName(ctx context.Context, name string) (*entities.Part, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, part *entities.Part) error
	Delete(ctx context.Context, id string) error
}

type TechnicianRepository interface {
	Create(ctx context.Context, technician *entities.Technician) error
	GetByID(ctx context.Context, id string) (*entities.Technician, error)
	GetByName(ctx context.Context, name string) (*entities.Technician, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]entities.Technician, error)
	Update(ctx context.Context, technician *entities.Technician) error
	Delete(ctx context.Context, id string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id string) (*entities.Service, error)
	ExistsByTypeAndDescription(ctx context.Context, serviceType, description string) (bool, error)
	GetAll(ctx context.Context, skip, limit int) ([]entities.Service, error)
	FindByType(ctx context.Context, pattern string, skip, limit int) ([]entities.Service, error)
	FindByTechnician(ctx context.Context, technicianID string, skip, limit int) ([]entities.Service, error)
	// AppendPart adds part to the end of the service's parts list in a
	// single statement.
	AppendPart(ctx context.Context, serviceID string, part entities.PartSnapshot) error
	// Update writes the service's mutable columns only; the parts list and
	// snapshots are left as stored.
	Update(ctx context.Context, service *entities.Service) error
	Delete(ctx context.Context, id string) error
}
