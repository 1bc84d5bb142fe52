package usecases

import (
	"context"

	"repair-server/entities"

	"github.com/stretchr/testify/mock"
)

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *entities.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id string) (*entities.Device, error) {
	args := m.Called(ctx, id)
	device, _ := args.Get(0).(*entities.Device)
	return device, args.Error(1)
}

func (m *MockDeviceRepository) GetByModel(ctx context.Context, model string) (*entities.Device, error) {
	args := m.Called(ctx, model)
	device, _ := args.Get(0).(*entities.Device)
	return device, args.Error(1)
}

func (m *MockDeviceRepository) ExistsByModel(ctx context.Context, model string) (bool, error) {
	args := m.Called(ctx, model)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeviceRepository) GetAll(ctx context.Context) ([]entities.Device, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Device), args.Error(1)
}

func (m *MockDeviceRepository) Update(ctx context.Context, device *entities.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) Create(ctx context.Context, part *entities.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartRepository) GetByID(ctx context.Context, id string) (*entities.Part, error) {
	args := m.Called(ctx, id)
	part, _ := args.Get(0).(*entities.Part)
	return part, args.Error(1)
}

func (m *MockPartRepository) GetByName(ctx context.Context, name string) (*entities.Part, error) {
	args := m.Called(ctx, name)
	part, _ := args.Get(0).(*entities.Part)
	return part, args.Error(1)
}

func (m *MockPartRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartRepository) GetAll(ctx context.Context) ([]entities.Part, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Part), args.Error(1)
}

func (m *MockPartRepository) Update(ctx context.Context, part *entities.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTechnicianRepository struct {
	mock.Mock
}

func (m *MockTechnicianRepository) Create(ctx context.Context, technician *entities.Technician) error {
	args := m.Called(ctx, technician)
	return args.Error(0)
}

func (m *MockTechnicianRepository) GetByID(ctx context.Context, id string) (*entities.Technician, error) {
	args := m.Called(ctx, id)
	technician, _ := args.Get(0).(*entities.Technician)
	return technician, args.Error(1)
}

func (m *MockTechnicianRepository) GetByName(ctx context.Context, name string) (*entities.Technician, error) {
	args := m.Called(ctx, name)
	technician, _ := args.Get(0).(*entities.Technician)
	return technician, args.Error(1)
}

func (m *MockTechnicianRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTechnicianRepository) GetAll(ctx context.Context) ([]entities.Technician, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, technician *entities.Technician) error {
	args := m.Called(ctx, technician)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	args := m.Called(ctx, id)
	service, _ := args.Get(0).(*entities.Service)
	return service, args.Error(1)
}

func (m *MockServiceRepository) ExistsByTypeAndDescription(ctx context.Context, serviceType, description string) (bool, error) {
	args := m.Called(ctx, serviceType, description)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRepository) GetAll(ctx context.Context, skip, limit int) ([]entities.Service, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]entities.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByType(ctx context.Context, pattern string, skip, limit int) ([]entities.Service, error) {
	args := m.Called(ctx, pattern, skip, limit)
	return args.Get(0).([]entities.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByTechnician(ctx context.Context, technicianID string, skip, limit int) ([]entities.Service, error) {
	args := m.Called(ctx, technicianID, skip, limit)
	return args.Get(0).([]entities.Service), args.Error(1)
}

func (m *MockServiceRepository) AppendPart(ctx context.Context, serviceID string, part entities.PartSnapshot) error {
	args := m.Called(ctx, serviceID, part)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Publish(event string, _ interface{}) {
	n.events = append(n.events, event)
}

type repoMocks struct {
	devices     *MockDeviceRepository
	parts       *MockPartRepository
	technicians *MockTechnicianRepository
	services    *MockServiceRepository
}

func newRepoMocks() repoMocks {
	return repoMocks{
		devices:     new(MockDeviceRepository),
		parts:       new(MockPartRepository),
		technicians: new(MockTechnicianRepository),
		services:    new(MockServiceRepository),
	}
}

func (r repoMocks) validator() *Validator {
	return NewValidator(r.devices, r.parts, r.technicians, r.services)
}
