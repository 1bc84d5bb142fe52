package repositories

import (
	"context"
	"encoding/json"

	"repair-server/db"
	"repair-server/entities"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type servicePgRepository struct {
	table pgTable[entities.Service]
}

func NewServicePgRepository(database db.Database) ServiceRepository {
	return &servicePgRepository{table: pgTable[entities.Service]{
		db: database,
		// stable order so skip/limit pages do not overlap
		order: "registered_at ASC, id ASC",
	}}
}

func (r *servicePgRepository) Create(ctx context.Context, service *entities.Service) error {
	return r.table.create(ctx, service)
}

func (r *servicePgRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *servicePgRepository) ExistsByTypeAndDescription(ctx context.Context, serviceType, description string) (bool, error) {
	return r.table.exists(ctx, "service_type = ? AND description = ?", serviceType, description)
}

func (r *servicePgRepository) GetAll(ctx context.Context, skip, limit int) ([]entities.Service, error) {
	return r.table.find(ctx, skip, limit, "")
}

func (r *servicePgRepository) FindByType(ctx context.Context, pattern string, skip, limit int) ([]entities.Service, error) {
	return r.table.find(ctx, skip, limit, "service_type ILIKE ?", containsPattern(pattern))
}

func (r *servicePgRepository) FindByTechnician(ctx context.Context, technicianID string, skip, limit int) ([]entities.Service, error) {
	return r.table.find(ctx, skip, limit, "technician_id = ?", technicianID)
}

func (r *servicePgRepository) AppendPart(ctx context.Context, serviceID string, part entities.PartSnapshot) error {
	payload, err := json.Marshal([]entities.PartSnapshot{part})
	if err != nil {
		return errors.Wrap(err, "failed to encode part snapshot")
	}

	res := r.table.conn(ctx).
		Model(&entities.Service{}).
		Where("id = ?", serviceID).
		Update("parts_used", gorm.Expr("COALESCE(parts_used, '[]'::jsonb) || ?::jsonb", string(payload)))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *servicePgRepository) Update(ctx context.Context, service *entities.Service) error {
	return r.table.update(ctx, service.ID, service, "service_type", "description", "value")
}

func (r *servicePgRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

