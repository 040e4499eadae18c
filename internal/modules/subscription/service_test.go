package subscription

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"salonbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockSubscriptionRepository) GetPlanByID(ctx context.Context, id domain.PlanID) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockSubscriptionRepository) GetActiveBySalonID(ctx context.Context, salonID int64) (*domain.Subscription, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Cancel(ctx context.Context, id string, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ExpireOld(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSalons struct {
	mock.Mock
}

func (m *MockSalons) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

type MockServiceCounter struct {
	mock.Mock
}

func (m *MockServiceCounter) CountActiveForSalon(ctx context.Context, salonID int64) (int, error) {
	args := m.Called(ctx, salonID)
	return args.Int(0), args.Error(1)
}

func starterPlan() *domain.Plan {
	return &domain.Plan{
		ID:                domain.PlanStarter,
		Name:              "Starter",
		CommissionRateBps: 1500,
		MaxServices:       10,
		IsActive:          true,
	}
}

func TestGetPlanForSalon_NoSubscriptionMeansFree(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	svc := NewService(repo, new(MockSalons), new(MockServiceCounter))

	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(nil, nil)

	plan, err := svc.GetPlanForSalon(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.PlanFree, plan)
}

func TestGetPlanForSalon_ExpiredFallsBackToFree(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	svc := NewService(repo, new(MockSalons), new(MockServiceCounter))

	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID:        "sub-1",
		SalonID:   7,
		PlanID:    domain.PlanPro,
		Status:    domain.SubscriptionActive,
		ExpiresAt: sql.NullTime{Time: time.Now().Add(-time.Hour), Valid: true},
	}, nil)

	plan, err := svc.GetPlanForSalon(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.PlanFree, plan)
}

func TestGetPlanForSalon_ActiveSubscription(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	svc := NewService(repo, new(MockSalons), new(MockServiceCounter))

	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID:      "sub-1",
		SalonID: 7,
		PlanID:  domain.PlanPremium,
		Status:  domain.SubscriptionActive,
	}, nil)

	plan, err := svc.GetPlanForSalon(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.PlanPremium, plan)
}

func TestSubscribe_CreatesSubscriptionWithExpiry(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	repo.On("GetPlanByID", mock.Anything, domain.PlanStarter).Return(starterPlan(), nil)
	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(sub *domain.Subscription) bool {
		return sub.ID != "" &&
			sub.SalonID == 7 &&
			sub.PlanID == domain.PlanStarter &&
			sub.Status == domain.SubscriptionActive &&
			sub.ExpiresAt.Valid &&
			sub.AutoRenew
	})).Return(nil)

	sub, err := svc.Subscribe(context.Background(), 5, SubscribeRequest{
		SalonID: 7, PlanID: "starter", BillingPeriod: "monthly",
	})
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), sub.ExpiresAt.Time, time.Minute)
	repo.AssertExpectations(t)
}

func TestSubscribe_ChangingPlanCancelsCurrent(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	repo.On("GetPlanByID", mock.Anything, domain.PlanPro).Return(&domain.Plan{
		ID: domain.PlanPro, IsActive: true,
	}, nil)
	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID: "sub-old", SalonID: 7, PlanID: domain.PlanStarter, Status: domain.SubscriptionActive,
	}, nil)
	repo.On("Cancel", mock.Anything, "sub-old", mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Subscribe(context.Background(), 5, SubscribeRequest{
		SalonID: 7, PlanID: "pro", BillingPeriod: "yearly",
	})
	assert.NoError(t, err)
	repo.AssertCalled(t, "Cancel", mock.Anything, "sub-old", mock.Anything)
}

func TestSubscribe_SamePlanConflicts(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	repo.On("GetPlanByID", mock.Anything, domain.PlanStarter).Return(starterPlan(), nil)
	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID: "sub-1", SalonID: 7, PlanID: domain.PlanStarter, Status: domain.SubscriptionActive,
	}, nil)

	_, err := svc.Subscribe(context.Background(), 5, SubscribeRequest{
		SalonID: 7, PlanID: "starter", BillingPeriod: "monthly",
	})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_NotYourSalon(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)

	_, err := svc.Subscribe(context.Background(), 99, SubscribeRequest{
		SalonID: 7, PlanID: "starter", BillingPeriod: "monthly",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)

	_, err := svc.Subscribe(context.Background(), 5, SubscribeRequest{
		SalonID: 7, PlanID: "platinum", BillingPeriod: "monthly",
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCancel_FreeTierRejected(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	svc := NewService(repo, salons, new(MockServiceCounter))

	salons.On("GetByID", mock.Anything, int64(7)).Return(&domain.Salon{ID: 7, OwnerID: 5}, nil)
	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID: "sub-1", SalonID: 7, PlanID: domain.PlanFree, Status: domain.SubscriptionActive,
	}, nil)

	err := svc.Cancel(context.Background(), 5, CancelRequest{SalonID: 7, Reason: "too expensive"})
	assert.ErrorIs(t, err, ErrCannotCancelFree)
}

func TestCanAddService_LimitReached(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	salons := new(MockSalons)
	counter := new(MockServiceCounter)
	svc := NewService(repo, salons, counter)

	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID: "sub-1", SalonID: 7, PlanID: domain.PlanStarter, Status: domain.SubscriptionActive,
	}, nil)
	repo.On("GetPlanByID", mock.Anything, domain.PlanStarter).Return(starterPlan(), nil)
	counter.On("CountActiveForSalon", mock.Anything, int64(7)).Return(10, nil)

	err := svc.CanAddService(context.Background(), 7)
	assert.ErrorIs(t, err, ErrServiceLimitReached)

	var limitErr *LimitError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 10, limitErr.Current)
	assert.Equal(t, 10, limitErr.Limit)
	assert.Equal(t, "pro", limitErr.UpgradeTo)
}

func TestCanAddService_UnderLimit(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	counter := new(MockServiceCounter)
	svc := NewService(repo, new(MockSalons), counter)

	repo.On("GetActiveBySalonID", mock.Anything, int64(7)).Return(&domain.Subscription{
		ID: "sub-1", SalonID: 7, PlanID: domain.PlanStarter, Status: domain.SubscriptionActive,
	}, nil)
	repo.On("GetPlanByID", mock.Anything, domain.PlanStarter).Return(starterPlan(), nil)
	counter.On("CountActiveForSalon", mock.Anything, int64(7)).Return(4, nil)

	assert.NoError(t, svc.CanAddService(context.Background(), 7))
}
