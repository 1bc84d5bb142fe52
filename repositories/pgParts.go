package repositories

import (
	"context"

	"repair-server/db"
	"repair-server/entities"
)

type partPgRepository struct {
	table pgTable[entities.Part]
}

func NewPartPgRepository(database db.Database) PartRepository {
	return &partPgRepository{table: pgTable[entities.Part]{db: database}}
}

func (r *partPgRepository) Create(ctx context.Context, part *entities.Part) error {
	return r.table.create(ctx, part)
}

func (r *partPgRepository) GetByID(ctx context.Context, id string) (*entities.Part, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *partPgRepository) GetByName(ctx context.Context, name string) (*entities.Part, error) {
	return r.table.first(ctx, "name = ?", name)
}

func (r *partPgRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.table.exists(ctx, "name = ?", name)
}

func (r *partPgRepository) GetAll(ctx context.Context) ([]entities.Part, error) {
	return r.table.find(ctx, 0, 0, "")
}

func (r *partPgRepository) Update(ctx context.Context, part *entities.Part) error {
	return r.table.update(ctx, part.ID, part, "name", "manufacturer", "price")
}

func (r *partPgRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
