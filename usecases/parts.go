package usecases

import (
	"context"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
)

type PartUseCase struct {
	PartRepo  repositories.PartRepository
	validator *Validator
}

func NewPartUseCase(partRepo repositories.PartRepository, validator *Validator) *PartUseCase {
	return &PartUseCase{
		PartRepo:  partRepo,
		validator: validator,
	}
}

func (uc *PartUseCase) CreatePart(ctx context.Context, part *entities.Part) error {
	part.ID = ""
	if err := uc.validator.CheckPart(ctx, part); err != nil {
		return err
	}
	return storeError(uc.PartRepo.Create(ctx, part), "part", part.Name)
}

func (uc *PartUseCase) GetPart(ctx context.Context, id string) (*entities.Part, error) {
	if id == "" {
		return nil, errors.Wrap(ErrValidation, "part id is required")
	}
	part, err := uc.PartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "part", id)
	}
	return part, nil
}

func (uc *PartUseCase) GetAllParts(ctx context.Context) ([]entities.Part, error) {
	parts, err := uc.PartRepo.GetAll(ctx)
	return parts, storeError(err, "part", "")
}

func (uc *PartUseCase) UpdatePart(ctx context.Context, id string, update entities.PartUpdate) (*entities.Part, error) {
	if update.IsEmpty() {
		return nil, errors.Wrap(ErrValidation, "no fields to update")
	}

	existing, err := uc.GetPart(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(existing)

	if err := uc.PartRepo.Update(ctx, existing); err != nil {
		return nil, storeError(err, "part", id)
	}
	return existing, nil
}

func (uc *PartUseCase) DeletePart(ctx context.Context, id string) error {
	if id == "" {
		return errors.Wrap(ErrValidation, "part id is required")
	}
	return storeError(uc.PartRepo.Delete(ctx, id), "part", id)
}
