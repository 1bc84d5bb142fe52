package usecases

import (
	"context"
	"time"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// Notifier receives service changes after they are persisted.
type Notifier interface {
	Publish(event string, payload interface{})
}

const (
	EventServiceCreated      = "service.created"
	EventServicePartAttached = "service.part_attached"
)

// ServiceComposer builds referentially valid service records: every device,
// technician and part it embeds is resolved from the store first.
type ServiceComposer struct {
	devices     repositories.DeviceRepository
	technicians repositories.TechnicianRepository
	parts       repositories.PartRepository
	services    repositories.ServiceRepository
	validator   *Validator
	notifier    Notifier
	now         func() time.Time
}

func NewServiceComposer(
	devices repositories.DeviceRepository,
	technicians repositories.TechnicianRepository,
	parts repositories.PartRepository,
	services repositories.ServiceRepository,
	validator *Validator,
	notifier Notifier,
) *ServiceComposer {
	return &ServiceComposer{
		devices:     devices,
		technicians: technicians,
		parts:       parts,
		services:    services,
		validator:   validator,
		notifier:    notifier,
		now:         time.Now,
	}
}

// ComposeService validates, resolves and persists a new service.
func (c *ServiceComposer) ComposeService(ctx context.Context, in entities.ServiceInput) (*entities.Service, error) {
	if err := c.validator.CheckService(ctx, in.ServiceType, in.Description); err != nil {
		return nil, err
	}

	device, err := c.resolveDevice(ctx, in.Device)
	if err != nil {
		return nil, err
	}

	technician, err := c.resolveTechnician(ctx, in.Technician)
	if err != nil {
		return nil, err
	}

	parts := make([]entities.PartSnapshot, 0, len(in.Parts))
	for _, ref := range in.Parts {
		part, err := c.resolvePart(ctx, ref)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part.Snapshot())
	}

	service := &entities.Service{
		ServiceType:  in.ServiceType,
		Description:  in.Description,
		Value:        in.Value,
		RegisteredAt: c.now().UTC(),
		DeviceID:     device.ID,
		TechnicianID: technician.ID,
		Device:       datatypes.NewJSONType(device.Snapshot()),
		Technician:   datatypes.NewJSONType(technician.Snapshot()),
		PartsUsed:    datatypes.NewJSONSlice(parts),
	}

	if err := c.services.Create(ctx, service); err != nil {
		return nil, storeError(err, "service", "")
	}

	c.publish(EventServiceCreated, service)
	return service, nil
}

// AttachPart appends a resolved part to the service's parts list. The same
// part may be attached any number of times.
func (c *ServiceComposer) AttachPart(ctx context.Context, serviceID string, ref entities.PartRef) (*entities.Service, error) {
	if serviceID == "" {
		return nil, errors.Wrap(ErrValidation, "service id is required")
	}
	if _, err := c.services.GetByID(ctx, serviceID); err != nil {
		return nil, storeError(err, "service", serviceID)
	}

	part, err := c.resolvePart(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := c.services.AppendPart(ctx, serviceID, part.Snapshot()); err != nil {
		return nil, storeError(err, "service", serviceID)
	}

	service, err := c.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, storeError(err, "service", serviceID)
	}

	c.publish(EventServicePartAttached, service)
	return service, nil
}

func (c *ServiceComposer) resolveDevice(ctx context.Context, ref entities.DeviceRef) (*entities.Device, error) {
	var (
		device *entities.Device
		err    error
		key    string
	)
	switch {
	case ref.ID != "":
		key = ref.ID
		device, err = c.devices.GetByID(ctx, ref.ID)
	case ref.Model != "":
		key = ref.Model
		device, err = c.devices.GetByModel(ctx, ref.Model)
	default:
		return nil, errors.Wrap(ErrValidation, "device id or model is required")
	}
	return device, referenceError(err, "device", key)
}

func (c *ServiceComposer) resolveTechnician(ctx context.Context, ref entities.TechnicianRef) (*entities.Technician, error) {
	var (
		technician *entities.Technician
		err        error
		key        string
	)
	switch {
	case ref.ID != "":
		key = ref.ID
		technician, err = c.technicians.GetByID(ctx, ref.ID)
	case ref.Name != "":
		key = ref.Name
		technician, err = c.technicians.GetByName(ctx, ref.Name)
	default:
		return nil, errors.Wrap(ErrValidation, "technician id or name is required")
	}
	return technician, referenceError(err, "technician", key)
}

func (c *ServiceComposer) resolvePart(ctx context.Context, ref entities.PartRef) (*entities.Part, error) {
	var (
		part *entities.Part
		err  error
		key  string
	)
	switch {
	case ref.ID != "":
		key = ref.ID
		part, err = c.parts.GetByID(ctx, ref.ID)
	case ref.Name != "":
		key = ref.Name
		part, err = c.parts.GetByName(ctx, ref.Name)
	default:
		return nil, errors.Wrap(ErrValidation, "part id or name is required")
	}
	return part, referenceError(err, "part", key)
}

func (c *ServiceComposer) publish(event string, service *entities.Service) {
	if c.notifier != nil {
		c.notifier.Publish(event, service)
	}
}

func referenceError(err error, kind, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return errors.Wrapf(ErrReferenceNotFound, "%s %s", kind, key)
	}
	return errors.Wrapf(err, "failed to resolve %s %s", kind, key)
}
