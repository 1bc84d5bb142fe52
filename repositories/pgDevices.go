package repositories

import (
	"context"

	"repair-server/db"
	"repair-server/entities"
)

type devicePgRepository struct {
	table pgTable[entities.Device]
}

func NewDevicePgRepository(database db.Database) DeviceRepository {
	return &devicePgRepository{table: pgTable[entities.Device]{db: database}}
}

func (r *devicePgRepository) Create(ctx context.Context, device *entities.Device) error {
	return r.table.create(ctx, device)
}

func (r *devicePgRepository) GetByID(ctx context.Context, id string) (*entities.Device, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *devicePgRepository) GetByModel(ctx context.Context, model string) (*entities.Device, error) {
	return r.table.first(ctx, "model = ?", model)
}

func (r *devicePgRepository) ExistsByModel(ctx context.Context, model string) (bool, error) {
	return r.table.exists(ctx, "model = ?", model)
}

func (r *devicePgRepository) GetAll(ctx context.Context) ([]entities.Device, error) {
	return r.table.find(ctx, 0, 0, "")
}

func (r *devicePgRepository) Update(ctx context.Context, device *entities.Device) error {
	return r.table.update(ctx, device.ID, device, "model", "type", "manufacturer")
}

func (r *devicePgRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
