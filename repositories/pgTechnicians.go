package repositories

import (
	"context"

	"repair-server/db"
	"repair-server/entities"
)

type technicianPgRepository struct {
	table pgTable[entities.Technician]
}

func NewTechnicianPgRepository(database db.Database) TechnicianRepository {
	return &technicianPgRepository{table: pgTable[entities.Technician]{db: database}}
}

func (r *technicianPgRepository) Create(ctx context.Context, technician *entities.Technician) error {
	return r.table.create(ctx, technician)
}

func (r *technicianPgRepository) GetByID(ctx context.Context, id string) (*entities.Technician, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *technicianPgRepository) GetByName(ctx context.Context, name string) (*entities.Technician, error) {
	return r.table.first(ctx, "name = ?", name)
}

func (r *technicianPgRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.table.exists(ctx, "name = ?", name)
}

func (r *technicianPgRepository) GetAll(ctx context.Context) ([]entities.Technician, error) {
	return r.table.find(ctx, 0, 0, "")
}

func (r *technicianPgRepository) Update(ctx context.Context, technician *entities.Technician) error {
	return r.table.update(ctx, technician.ID, technician, "name", "specialty", "contact", "salary")
}

func (r *technicianPgRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}
