package usecases

import (
	"context"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
)

type ServiceUseCase struct {
	ServiceRepo repositories.ServiceRepository
	composer    *ServiceComposer
}

func NewServiceUseCase(serviceRepo repositories.ServiceRepository, composer *ServiceComposer) *ServiceUseCase {
	return &ServiceUseCase{
		ServiceRepo: serviceRepo,
		composer:    composer,
	}
}

func (uc *ServiceUseCase) CreateService(ctx context.Context, in entities.ServiceInput) (*entities.Service, error) {
	return uc.composer.ComposeService(ctx, in)
}

func (uc *ServiceUseCase) AttachPart(ctx context.Context, serviceID string, ref entities.PartRef) (*entities.Service, error) {
	return uc.composer.AttachPart(ctx, serviceID, ref)
}

func (uc *ServiceUseCase) GetService(ctx context.Context, id string) (*entities.Service, error) {
	if id == "" {
		return nil, errors.Wrap(ErrValidation, "service id is required")
	}
	service, err := uc.ServiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "service", id)
	}
	return service, nil
}

func (uc *ServiceUseCase) GetAllServices(ctx context.Context, skip, limit int) ([]entities.Service, error) {
	services, err := uc.ServiceRepo.GetAll(ctx, skip, limit)
	return services, storeError(err, "service", "")
}

// GetServicesByType matches the pattern anywhere in the service type,
// ignoring case. An empty result is reported as ErrNoMatch.
func (uc *ServiceUseCase) GetServicesByType(ctx context.Context, pattern string, skip, limit int) ([]entities.Service, error) {
	if pattern == "" {
		return nil, errors.Wrap(ErrValidation, "service type is required")
	}
	services, err := uc.ServiceRepo.FindByType(ctx, pattern, skip, limit)
	if err != nil {
		return nil, storeError(err, "service", "")
	}
	if len(services) == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "no service of type %q", pattern)
	}
	return services, nil
}

func (uc *ServiceUseCase) GetServicesByTechnician(ctx context.Context, technicianID string, skip, limit int) ([]entities.Service, error) {
	if technicianID == "" {
		return nil, errors.Wrap(ErrValidation, "technician id is required")
	}
	services, err := uc.ServiceRepo.FindByTechnician(ctx, technicianID, skip, limit)
	if err != nil {
		return nil, storeError(err, "service", "")
	}
	if len(services) == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "no service for technician %s", technicianID)
	}
	return services, nil
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, id string, update entities.ServiceUpdate) (*entities.Service, error) {
	if update.IsEmpty() {
		return nil, errors.Wrap(ErrValidation, "no fields to update")
	}

	existing, err := uc.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)

	if err := uc.ServiceRepo.Update(ctx, existing); err != nil {
		return nil, storeError(err, "service", id)
	}

	// re-read so parts attached meanwhile are reported
	return uc.GetService(ctx, id)
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, id string) error {
	if id == "" {
		return errors.Wrap(ErrValidation, "service id is required")
	}
	return storeError(uc.ServiceRepo.Delete(ctx, id), "service", id)
}
