package usecases

import (
	"context"
	"testing"
	"time"

	"repair-server/entities"
	"repair-server/repositories"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("BRT", -3*60*60))

func newTestComposer(repos repoMocks, notifier Notifier) *ServiceComposer {
	c := NewServiceComposer(repos.devices, repos.technicians, repos.parts, repos.services, repos.validator(), notifier)
	c.now = func() time.Time { return fixedNow }
	return c
}

func screenRepair() entities.ServiceInput {
	return entities.ServiceInput{
		ServiceType: "Screen",
		Description: "replace cracked screen",
		Value:       150,
		Device:      entities.DeviceRef{ID: "d1"},
		Technician:  entities.TechnicianRef{ID: "t1"},
	}
}

func TestComposeService(t *testing.T) {
	ctx := context.Background()
	device := &entities.Device{ID: "d1", Model: "X200", Type: "phone", Manufacturer: "Acme"}
	tech := &entities.Technician{ID: "t1", Name: "Ana", Specialty: "phones", Contact: "555", Salary: 3000}

	t.Run("embeds resolved snapshots", func(t *testing.T) {
		repos := newRepoMocks()
		notifier := &recordingNotifier{}
		c := newTestComposer(repos, notifier)

		repos.services.On("ExistsByTypeAndDescription", ctx, "Screen", "replace cracked screen").Return(false, nil)
		repos.devices.On("GetByID", ctx, "d1").Return(device, nil)
		repos.technicians.On("GetByID", ctx, "t1").Return(tech, nil)
		repos.services.On("Create", ctx, mock.Anything).Return(nil)

		service, err := c.ComposeService(ctx, screenRepair())
		require.NoError(t, err)

		assert.Equal(t, device.Snapshot(), service.Device.Data())
		assert.Equal(t, tech.Snapshot(), service.Technician.Data())
		assert.Equal(t, "d1", service.DeviceID)
		assert.Equal(t, "t1", service.TechnicianID)
		assert.Empty(t, service.PartsUsed)
		assert.NotNil(t, service.PartsUsed)
		assert.Equal(t, time.UTC, service.RegisteredAt.Location())
		assert.True(t, service.RegisteredAt.Equal(fixedNow))
		assert.Equal(t, []string{EventServiceCreated}, notifier.events)
	})

	t.Run("resolves by natural key when no id is given", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		in := screenRepair()
		in.Device = entities.DeviceRef{Model: "X200"}
		in.Technician = entities.TechnicianRef{Name: "Ana"}
		in.Parts = []entities.PartRef{{Name: "Screen"}}

		repos.services.On("ExistsByTypeAndDescription", ctx, mock.Anything, mock.Anything).Return(false, nil)
		repos.devices.On("GetByModel", ctx, "X200").Return(device, nil)
		repos.technicians.On("GetByName", ctx, "Ana").Return(tech, nil)
		repos.parts.On("GetByName", ctx, "Screen").
			Return(&entities.Part{ID: "p1", Name: "Screen", Manufacturer: "Acme", Price: 80}, nil)
		repos.services.On("Create", ctx, mock.Anything).Return(nil)

		service, err := c.ComposeService(ctx, in)
		require.NoError(t, err)
		require.Len(t, service.PartsUsed, 1)
		assert.Equal(t, "p1", service.PartsUsed[0].ID)
		repos.devices.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("duplicate type and description", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		repos.services.On("ExistsByTypeAndDescription", ctx, "Screen", "replace cracked screen").Return(true, nil)

		_, err := c.ComposeService(ctx, screenRepair())
		assert.True(t, errors.Is(err, ErrDuplicate))
		repos.devices.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		repos.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing device", func(t *testing.T) {
		repos := newRepoMocks()
		notifier := &recordingNotifier{}
		c := newTestComposer(repos, notifier)

		repos.services.On("ExistsByTypeAndDescription", ctx, mock.Anything, mock.Anything).Return(false, nil)
		repos.devices.On("GetByID", ctx, "d1").Return(nil, repositories.ErrNotFound)

		_, err := c.ComposeService(ctx, screenRepair())
		assert.True(t, errors.Is(err, ErrReferenceNotFound))
		assert.Contains(t, err.Error(), "device")
		repos.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, notifier.events)
	})

	t.Run("missing technician", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		repos.services.On("ExistsByTypeAndDescription", ctx, mock.Anything, mock.Anything).Return(false, nil)
		repos.devices.On("GetByID", ctx, "d1").Return(device, nil)
		repos.technicians.On("GetByID", ctx, "t1").Return(nil, repositories.ErrNotFound)

		_, err := c.ComposeService(ctx, screenRepair())
		assert.True(t, errors.Is(err, ErrReferenceNotFound))
		assert.Contains(t, err.Error(), "technician")
		repos.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing part", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		in := screenRepair()
		in.Parts = []entities.PartRef{{ID: "p404"}}

		repos.services.On("ExistsByTypeAndDescription", ctx, mock.Anything, mock.Anything).Return(false, nil)
		repos.devices.On("GetByID", ctx, "d1").Return(device, nil)
		repos.technicians.On("GetByID", ctx, "t1").Return(tech, nil)
		repos.parts.On("GetByID", ctx, "p404").Return(nil, repositories.ErrNotFound)

		_, err := c.ComposeService(ctx, in)
		assert.True(t, errors.Is(err, ErrReferenceNotFound))
		repos.services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reference without id or key", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		in := screenRepair()
		in.Device = entities.DeviceRef{}

		repos.services.On("ExistsByTypeAndDescription", ctx, mock.Anything, mock.Anything).Return(false, nil)

		_, err := c.ComposeService(ctx, in)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestAttachPart(t *testing.T) {
	ctx := context.Background()
	screen := &entities.Part{ID: "p1", Name: "Screen", Manufacturer: "Acme", Price: 80}

	t.Run("same part twice is kept twice", func(t *testing.T) {
		repos := newRepoMocks()
		notifier := &recordingNotifier{}
		c := newTestComposer(repos, notifier)

		stored := &entities.Service{ID: "s1", PartsUsed: datatypes.JSONSlice[entities.PartSnapshot]{}}
		repos.services.On("GetByID", ctx, "s1").Return(stored, nil)
		repos.parts.On("GetByID", ctx, "p1").Return(screen, nil)
		repos.services.On("AppendPart", ctx, "s1", screen.Snapshot()).Run(func(mock.Arguments) {
			stored.PartsUsed = append(stored.PartsUsed, screen.Snapshot())
		}).Return(nil)

		_, err := c.AttachPart(ctx, "s1", entities.PartRef{ID: "p1"})
		require.NoError(t, err)
		service, err := c.AttachPart(ctx, "s1", entities.PartRef{ID: "p1"})
		require.NoError(t, err)

		require.Len(t, service.PartsUsed, 2)
		assert.Equal(t, service.PartsUsed[0], service.PartsUsed[1])
		repos.services.AssertNumberOfCalls(t, "AppendPart", 2)
		assert.Equal(t, []string{EventServicePartAttached, EventServicePartAttached}, notifier.events)
	})

	t.Run("unknown service", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		repos.services.On("GetByID", ctx, "s404").Return(nil, repositories.ErrNotFound)

		_, err := c.AttachPart(ctx, "s404", entities.PartRef{ID: "p1"})
		assert.True(t, errors.Is(err, ErrNotFound))
		repos.parts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown part", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		repos.services.On("GetByID", ctx, "s1").Return(&entities.Service{ID: "s1"}, nil)
		repos.parts.On("GetByName", ctx, "Battery").Return(nil, repositories.ErrNotFound)

		_, err := c.AttachPart(ctx, "s1", entities.PartRef{Name: "Battery"})
		assert.True(t, errors.Is(err, ErrReferenceNotFound))
		repos.services.AssertNotCalled(t, "AppendPart", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("service removed between lookup and append", func(t *testing.T) {
		repos := newRepoMocks()
		c := newTestComposer(repos, nil)

		repos.services.On("GetByID", ctx, "s1").Return(&entities.Service{ID: "s1"}, nil)
		repos.parts.On("GetByID", ctx, "p1").Return(screen, nil)
		repos.services.On("AppendPart", ctx, "s1", mock.Anything).Return(repositories.ErrNotFound)

		_, err := c.AttachPart(ctx, "s1", entities.PartRef{ID: "p1"})
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
