package usecases

import (
	"context"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
)

// Validator runs the natural-key uniqueness checks before a record is
// written. The unique indexes in the store stay authoritative; this only
// rejects the common case early.
type Validator struct {
	devices     repositories.DeviceRepository
	parts       repositories.PartRepository
	technicians repositories.TechnicianRepository
	services    repositories.ServiceRepository
}

func NewValidator(
	devices repositories.DeviceRepository,
	parts repositories.PartRepository,
	technicians repositories.TechnicianRepository,
	services repositories.ServiceRepository,
) *Validator {
	return &Validator{
		devices:     devices,
		parts:       parts,
		technicians: technicians,
		services:    services,
	}
}

func (v *Validator) CheckDevice(ctx context.Context, device *entities.Device) error {
	exists, err := v.devices.ExistsByModel(ctx, device.Model)
	return conflict(exists, err, "device with model %q", device.Model)
}

func (v *Validator) CheckPart(ctx context.Context, part *entities.Part) error {
	exists, err := v.parts.ExistsByName(ctx, part.Name)
	return conflict(exists, err, "part %q", part.Name)
}

func (v *Validator) CheckTechnician(ctx context.Context, technician *entities.Technician) error {
	exists, err := v.technicians.ExistsByName(ctx, technician.Name)
	return conflict(exists, err, "technician %q", technician.Name)
}

func (v *Validator) CheckService(ctx context.Context, serviceType, description string) error {
	exists, err := v.services.ExistsByTypeAndDescription(ctx, serviceType, description)
	return conflict(exists, err, "service %q / %q", serviceType, description)
}

func conflict(exists bool, err error, format string, args ...interface{}) error {
	if err != nil {
		return errors.Wrap(err, "uniqueness check failed")
	}
	if exists {
		return errors.Wrapf(ErrDuplicate, format+" already registered", args...)
	}
	return nil
}
