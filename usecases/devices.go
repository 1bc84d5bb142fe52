package usecases

import (
	"context"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
)

type DeviceUseCase struct {
	DeviceRepo repositories.DeviceRepository
	validator  *Validator
}

func NewDeviceUseCase(deviceRepo repositories.DeviceRepository, validator *Validator) *DeviceUseCase {
	return &DeviceUseCase{
		DeviceRepo: deviceRepo,
		validator:  validator,
	}
}

// CreateDevice registers a device whose model is not yet known.
func (uc *DeviceUseCase) CreateDevice(ctx context.Context, device *entities.Device) error {
	device.ID = ""
	if err := uc.validator.CheckDevice(ctx, device); err != nil {
		return err
	}
	return storeError(uc.DeviceRepo.Create(ctx, device), "device", device.Model)
}

func (uc *DeviceUseCase) GetDevice(ctx context.Context, id string) (*entities.Device, error) {
	if id == "" {
		return nil, errors.Wrap(ErrValidation, "device id is required")
	}
	device, err := uc.DeviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "device", id)
	}
	return device, nil
}

func (uc *DeviceUseCase) GetAllDevices(ctx context.Context) ([]entities.Device, error) {
	devices, err := uc.DeviceRepo.GetAll(ctx)
	return devices, storeError(err, "device", "")
}

// UpdateDevice overwrites the supplied fields only. The model uniqueness
// probe is not repeated here; the store index still refuses a clash.
func (uc *DeviceUseCase) UpdateDevice(ctx context.Context, id string, update entities.DeviceUpdate) (*entities.Device, error) {
	if update.IsEmpty() {
		return nil, errors.Wrap(ErrValidation, "no fields to update")
	}

	existing, err := uc.GetDevice(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)

	if err := uc.DeviceRepo.Update(ctx, existing); err != nil {
		return nil, storeError(err, "device", id)
	}
	return existing, nil
}

func (uc *DeviceUseCase) DeleteDevice(ctx context.Context, id string) error {
	if id == "" {
		return errors.Wrap(ErrValidation, "device id is required")
	}
	return storeError(uc.DeviceRepo.Delete(ctx, id), "device", id)
}
