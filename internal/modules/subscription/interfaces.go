package subscription

import (
	"context"

	"salonbook/internal/domain"
)

type SubscriptionRepository interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlanByID(ctx context.Context, id domain.PlanID) (*domain.Plan, error)
	GetActiveBySalonID(ctx context.Context, salonID int64) (*domain.Subscription, error)
	Create(ctx context.Context, sub *domain.Subscription) error
	Cancel(ctx context.Context, id string, reason string) error
	ExpireOld(ctx context.Context) (int, error)
}

type SalonReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// ServiceCounter reports how many active offerings a salon has, for plan
// limit checks.
type ServiceCounter interface {
	CountActiveForSalon(ctx context.Context, salonID int64) (int, error)
}
