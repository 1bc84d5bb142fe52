// Package testutil provides an in-memory record store that enforces the same
// unique keys and error values as the postgres repositories.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memTable keeps rows by id in insertion order. key returns the natural key
// that must be unique across rows.
type memTable[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	id    func(*T) *string
	key   func(*T) string
	clone func(T) T
}

func newMemTable[T any](id func(*T) *string, key func(*T) string, clone func(T) T) *memTable[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &memTable[T]{rows: make(map[string]T), id: id, key: key, clone: clone}
}

// keyTaken reports whether another row already holds key. Callers hold mu.
func (t *memTable[T]) keyTaken(key, exceptID string) bool {
	for id, row := range t.rows {
		if id != exceptID && t.key(&row) == key {
			return true
		}
	}
	return false
}

func (t *memTable[T]) create(record *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(record)
	if *id == "" {
		*id = uuid.New().String()
	}
	if _, ok := t.rows[*id]; ok {
		return errors.Wrap(repositories.ErrDuplicateKey, "primary key")
	}
	if t.keyTaken(t.key(record), "") {
		return errors.Wrap(repositories.ErrDuplicateKey, "natural key")
	}
	t.rows[*id] = t.clone(*record)
	t.order = append(t.order, *id)
	return nil
}

func (t *memTable[T]) get(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := t.clone(row)
	return &out, nil
}

func (t *memTable[T]) getByKey(key string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		row := t.rows[id]
		if t.key(&row) == key {
			out := t.clone(row)
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (t *memTable[T]) exists(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyTaken(key, "")
}

func (t *memTable[T]) all(match func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, id := range t.order {
		row := t.rows[id]
		if match == nil || match(&row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// patch copies the mutable fields of record onto the stored row. Unknown
// ids are not re-created.
func (t *memTable[T]) patch(record *T, apply func(dst, src *T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := *t.id(record)
	row, ok := t.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	apply(&row, record)
	if t.keyTaken(t.key(&row), id) {
		return errors.Wrap(repositories.ErrDuplicateKey, "natural key")
	}
	t.rows[id] = row
	return nil
}

func (t *memTable[T]) update(id string, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return repositories.ErrNotFound
	}
	fn(&row)
	t.rows[id] = row
	return nil
}

func (t *memTable[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func page[T any](rows []T, skip, limit int) []T {
	if skip >= len(rows) {
		return []T{}
	}
	rows = rows[skip:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}

// Store bundles one in-memory repository per record kind.
type Store struct {
	Devices     *DeviceRepository
	Parts       *PartRepository
	Technicians *TechnicianRepository
	Services    *ServiceRepository
}

func NewStore() *Store {
	return &Store{
		Devices: &DeviceRepository{table: newMemTable(
			func(d *entities.Device) *string { return &d.ID },
			func(d *entities.Device) string { return d.Model },
			nil,
		)},
		Parts: &PartRepository{table: newMemTable(
			func(p *entities.Part) *string { return &p.ID },
			func(p *entities.Part) string { return p.Name },
			nil,
		)},
		Technicians: &TechnicianRepository{table: newMemTable(
			func(t *entities.Technician) *string { return &t.ID },
			func(t *entities.Technician) string { return t.Name },
			nil,
		)},
		Services: &ServiceRepository{table: newMemTable(
			func(s *entities.Service) *string { return &s.ID },
			func(s *entities.Service) string { return s.ServiceType + "\x00" + s.Description },
			cloneService,
		)},
	}
}

func cloneService(s entities.Service) entities.Service {
	parts := make([]entities.PartSnapshot, len(s.PartsUsed))
	copy(parts, s.PartsUsed)
	s.PartsUsed = parts
	return s
}

type DeviceRepository struct {
	table *memTable[entities.Device]
}

func (r *DeviceRepository) Create(_ context.Context, device *entities.Device) error {
	return r.table.create(device)
}

func (r *DeviceRepository) GetByID(_ context.Context, id string) (*entities.Device, error) {
	return r.table.get(id)
}

func (r *DeviceRepository) GetByModel(_ context.Context, model string) (*entities.Device, error) {
	return r.table.getByKey(model)
}

func (r *DeviceRepository) ExistsByModel(_ context.Context, model string) (bool, error) {
	return r.table.exists(model), nil
}

func (r *DeviceRepository) GetAll(_ context.Context) ([]entities.Device, error) {
	return r.table.all(nil), nil
}

func (r *DeviceRepository) Update(_ context.Context, device *entities.Device) error {
	return r.table.patch(device, func(dst, src *entities.Device) {
		dst.Model, dst.Type, dst.Manufacturer = src.Model, src.Type, src.Manufacturer
	})
}

func (r *DeviceRepository) Delete(_ context.Context, id string) error {
	return r.table.delete(id)
}

type PartRepository struct {
	table *memTable[entities.Part]
}

func (r *PartRepository) Create(_ context.Context, part *entities.Part) error {
	return r.table.create(part)
}

func (r *PartRepository) GetByID(_ context.Context, id string) (*entities.Part, error) {
	return r.table.get(id)
}

func (r *PartRepository) GetByName(_ context.Context, name string) (*entities.Part, error) {
	return r.table.getByKey(name)
}

func (r *PartRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.table.exists(name), nil
}

func (r *PartRepository) GetAll(_ context.Context) ([]entities.Part, error) {
	return r.table.all(nil), nil
}

func (r *PartRepository) Update(_ context.Context, part *entities.Part) error {
	return r.table.patch(part, func(dst, src *entities.Part) {
		dst.Name, dst.Manufacturer, dst.Price = src.Name, src.Manufacturer, src.Price
	})
}

func (r *PartRepository) Delete(_ context.Context, id string) error {
	return r.table.delete(id)
}

type TechnicianRepository struct {
	table *memTable[entities.Technician]
}

func (r *TechnicianRepository) Create(_ context.Context, technician *entities.Technician) error {
	return r.table.create(technician)
}

func (r *TechnicianRepository) GetByID(_ context.Context, id string) (*entities.Technician, error) {
	return r.table.get(id)
}

func (r *TechnicianRepository) GetByName(_ context.Context, name string) (*entities.Technician, error) {
	return r.table.getByKey(name)
}

func (r *TechnicianRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.table.exists(name), nil
}

func (r *TechnicianRepository) GetAll(_ context.Context) ([]entities.Technician, error) {
	return r.table.all(nil), nil
}

func (r *TechnicianRepository) Update(_ context.Context, technician *entities.Technician) error {
	return r.table.patch(technician, func(dst, src *entities.Technician) {
		dst.Name, dst.Specialty, dst.Contact, dst.Salary = src.Name, src.Specialty, src.Contact, src.Salary
	})
}

func (r *TechnicianRepository) Delete(_ context.Context, id string) error {
	return r.table.delete(id)
}

type ServiceRepository struct {
	table *memTable[entities.Service]
}

func (r *ServiceRepository) Create(_ context.Context, service *entities.Service) error {
	if service.PartsUsed == nil {
		service.PartsUsed = []entities.PartSnapshot{}
	}
	return r.table.create(service)
}

func (r *ServiceRepository) GetByID(_ context.Context, id string) (*entities.Service, error) {
	return r.table.get(id)
}

func (r *ServiceRepository) ExistsByTypeAndDescription(_ context.Context, serviceType, description string) (bool, error) {
	return r.table.exists(serviceType + "\x00" + description), nil
}

func (r *ServiceRepository) list(match func(*entities.Service) bool, skip, limit int) []entities.Service {
	rows := r.table.all(match)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].RegisteredAt.Equal(rows[j].RegisteredAt) {
			return rows[i].RegisteredAt.Before(rows[j].RegisteredAt)
		}
		return rows[i].ID < rows[j].ID
	})
	return page(rows, skip, limit)
}

func (r *ServiceRepository) GetAll(_ context.Context, skip, limit int) ([]entities.Service, error) {
	return r.list(nil, skip, limit), nil
}

func (r *ServiceRepository) FindByType(_ context.Context, pattern string, skip, limit int) ([]entities.Service, error) {
	pattern = strings.ToLower(pattern)
	return r.list(func(s *entities.Service) bool {
		return strings.Contains(strings.ToLower(s.ServiceType), pattern)
	}, skip, limit), nil
}

func (r *ServiceRepository) FindByTechnician(_ context.Context, technicianID string, skip, limit int) ([]entities.Service, error) {
	return r.list(func(s *entities.Service) bool {
		return s.TechnicianID == technicianID
	}, skip, limit), nil
}

func (r *ServiceRepository) AppendPart(_ context.Context, serviceID string, part entities.PartSnapshot) error {
	return r.table.update(serviceID, func(s *entities.Service) {
		s.PartsUsed = append(s.PartsUsed, part)
	})
}

func (r *ServiceRepository) Update(_ context.Context, service *entities.Service) error {
	return r.table.patch(service, func(dst, src *entities.Service) {
		dst.ServiceType, dst.Description, dst.Value = src.ServiceType, src.Description, src.Value
	})
}

func (r *ServiceRepository) Delete(_ context.Context, id string) error {
	return r.table.delete(id)
}

var (
	_ repositories.DeviceRepository     = (*DeviceRepository)(nil)
	_ repositories.PartRepository       = (*PartRepository)(nil)
	_ repositories.TechnicianRepository = (*TechnicianRepository)(nil)
	_ repositories.ServiceRepository    = (*ServiceRepository)(nil)
)
