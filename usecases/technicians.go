package usecases

import (
	"context"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
)

type TechnicianUseCase struct {
	TechnicianRepo repositories.TechnicianRepository
	validator      *Validator
}

func NewTechnicianUseCase(technicianRepo repositories.TechnicianRepository, validator *Validator) *TechnicianUseCase {
	return &TechnicianUseCase{
		TechnicianRepo: technicianRepo,
		validator:      validator,
	}
}

func (uc *TechnicianUseCase) CreateTechnician(ctx context.Context, technician *entities.Technician) error {
	technician.ID = ""
	if err := uc.validator.CheckTechnician(ctx, technician); err != nil {
		return err
	}
	return storeError(uc.TechnicianRepo.Create(ctx, technician), "technician", technician.Name)
}

func (uc *TechnicianUseCase) GetTechnician(ctx context.Context, id string) (*entities.Technician, error) {
	if id == "" {
		return nil, errors.Wrap(ErrValidation, "technician id is required")
	}
	technician, err := uc.TechnicianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "technician", id)
	}
	return technician, nil
}

func (uc *TechnicianUseCase) GetAllTechnicians(ctx context.Context) ([]entities.Technician, error) {
	technicians, err := uc.TechnicianRepo.GetAll(ctx)
	return technicians, storeError(err, "technician", "")
}

func (uc *TechnicianUseCase) UpdateTechnician(ctx context.Context, id string, update entities.TechnicianUpdate) (*entities.Technician, error) {
	if update.IsEmpty() {
		return nil, errors.Wrap(ErrValidation, "no fields to update")
	}

	existing, err := uc.GetTechnician(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)

	if err := uc.TechnicianRepo.Update(ctx, existing); err != nil {
		return nil, storeError(err, "technician", id)
	}
	return existing, nil
}

func (uc *TechnicianUseCase) DeleteTechnician(ctx context.Context, id string) error {
	if id == "" {
		return errors.Wrap(ErrValidation, "technician id is required")
	}
	return storeError(uc.TechnicianRepo.Delete(ctx, id), "technician", id)
}
