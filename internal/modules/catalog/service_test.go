package catalog

import (
	"context"
	"testing"

	"salonbook/internal/domain"
	"salonbook/internal/modules/subscription"
	"salonbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) GetAll(ctx context.Context, f repository.SalonFilters) ([]domain.Salon, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Salon), args.Get(1).(int64), args.Error(2)
}

func (m *MockSalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Salon, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) Create(ctx context.Context, salon *domain.Salon) error {
	args := m.Called(ctx, salon)
	if salon != nil {
		salon.ID = 7
	}
	return args.Error(0)
}

func (m *MockSalonRepository) Update(ctx context.Context, salon *domain.Salon) error {
	args := m.Called(ctx, salon)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.SalonService) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 31
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalonService), args.Error(1)
}

func (m *MockServiceRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.SalonService, error) {
	args := m.Called(ctx, salonID)
	return args.Get(0).([]domain.SalonService), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.SalonService) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Create(ctx context.Context, z *domain.CoverageZone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.CoverageZone, error) {
	args := m.Called(ctx, salonID)
	return args.Get(0).([]domain.CoverageZone), args.Error(1)
}

func (m *MockZoneRepository) GetByCity(ctx context.Context, city string) ([]domain.CoverageZone, error) {
	args := m.Called(ctx, city)
	return args.Get(0).([]domain.CoverageZone), args.Error(1)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id, salonID int64) error {
	args := m.Called(ctx, id, salonID)
	return args.Error(0)
}

type MockPlanLimiter struct {
	mock.Mock
}

func (m *MockPlanLimiter) CanAddService(ctx context.Context, salonID int64) error {
	args := m.Called(ctx, salonID)
	return args.Error(0)
}

func newCatalog() (*Service, *MockSalonRepository, *MockServiceRepository, *MockZoneRepository, *MockPlanLimiter) {
	salons := new(MockSalonRepository)
	services := new(MockServiceRepository)
	zones := new(MockZoneRepository)
	limits := new(MockPlanLimiter)
	return NewService(salons, services, zones, limits), salons, services, zones, limits
}

func TestAddService_ChecksPlanLimit(t *testing.T) {
	svc, salons, services, _, limits := newCatalog()

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	limits.On("CanAddService", mock.Anything, int64(7)).Return(&subscription.LimitError{
		Err: subscription.ErrServiceLimitReached, Current: 3, Limit: 3, PlanName: "free", UpgradeTo: "starter",
	})

	_, err := svc.AddService(context.Background(), 5, CreateServiceRequest{
		SalonID: 7, Name: "Haircut", DurationMinutes: 60, PriceCents: 4500,
	})
	assert.ErrorIs(t, err, subscription.ErrServiceLimitReached)
	services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddService_Success(t *testing.T) {
	svc, salons, services, _, limits := newCatalog()

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	limits.On("CanAddService", mock.Anything, int64(7)).Return(nil)
	services.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.SalonService) bool {
		return s.SalonID == 7 && s.Name == "Haircut" && s.IsActive
	})).Return(nil)

	out, err := svc.AddService(context.Background(), 5, CreateServiceRequest{
		SalonID: 7, Name: "Haircut", DurationMinutes: 60, PriceCents: 4500,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(31), out.ID)
}

func TestAddService_NotYourSalon(t *testing.T) {
	svc, salons, _, _, _ := newCatalog()

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)

	_, err := svc.AddService(context.Background(), 99, CreateServiceRequest{
		SalonID: 7, Name: "Haircut", DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateSalon_OwnerOnly(t *testing.T) {
	svc, salons, _, _, _ := newCatalog()

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5, Name: "Old"}, nil)
	salons.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Salon) bool {
		return s.Name == "New Name"
	})).Return(nil)

	name := "New Name"
	out, err := svc.UpdateSalon(context.Background(), 5, 7, UpdateSalonRequest{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", out.Name)

	_, err = svc.UpdateSalon(context.Background(), 99, 7, UpdateSalonRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetSalon_NotFound(t *testing.T) {
	svc, salons, _, _, _ := newCatalog()

	salons.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSalon(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Zone centered on the Paris opera house with a 5 km radius: a point by
// the Louvre (~1.5 km away) is covered, Versailles (~17 km) is not.
func TestFindZonesCovering(t *testing.T) {
	svc, _, _, zones, _ := newCatalog()

	zones.On("GetByCity", mock.Anything, "Paris").Return([]domain.CoverageZone{
		{ID: 1, SalonID: 7, City: "Paris", Latitude: 48.8719, Longitude: 2.3316, RadiusKm: 5, AdditionalFeeCents: 500},
		{ID: 2, SalonID: 8, City: "Paris", Latitude: 48.8049, Longitude: 2.1204, RadiusKm: 2},
	}, nil)

	matches, err := svc.FindZonesCovering(context.Background(), "Paris", 48.8606, 2.3376)
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].Zone.ID)
	assert.InDelta(t, 1.3, matches[0].DistanceKm, 0.5)
	assert.Equal(t, int64(500), matches[0].Zone.AdditionalFeeCents)
}

func TestFindZonesCovering_NoZones(t *testing.T) {
	svc, _, _, zones, _ := newCatalog()

	zones.On("GetByCity", mock.Anything, "Lyon").Return([]domain.CoverageZone{}, nil)

	matches, err := svc.FindZonesCovering(context.Background(), "Lyon", 45.76, 4.84)
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindZonesCovering_SortsByDistance(t *testing.T) {
	svc, _, _, zones, _ := newCatalog()

	// Both zones cover the point; the closer center must come first.
	zones.On("GetByCity", mock.Anything, "Paris").Return([]domain.CoverageZone{
		{ID: 1, Latitude: 48.90, Longitude: 2.35, RadiusKm: 10},
		{ID: 2, Latitude: 48.86, Longitude: 2.34, RadiusKm: 10},
	}, nil)

	matches, err := svc.FindZonesCovering(context.Background(), "Paris", 48.8606, 2.3376)
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, int64(2), matches[0].Zone.ID)
	assert.Equal(t, int64(1), matches[1].Zone.ID)
}

func TestFindZonesCovering_RejectsBadCoordinates(t *testing.T) {
	svc, _, _, _, _ := newCatalog()

	_, err := svc.FindZonesCovering(context.Background(), "Paris", 91, 0)
	assert.ErrorIs(t, err, ErrValidation)
}
