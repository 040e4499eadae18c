package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salonbook/internal/domain"
	"salonbook/internal/modules/commission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	repo     SubscriptionRepository
	salons   SalonReader
	services ServiceCounter
}

func NewService(repo SubscriptionRepository, salons SalonReader, services ServiceCounter) *Service {
	return &Service{repo: repo, salons: salons, services: services}
}

// defaultFreePlan is the fallback when the plans table has no free row.
func defaultFreePlan() *domain.Plan {
	return &domain.Plan{
		ID:                domain.PlanFree,
		Name:              "Free",
		CommissionRateBps: commission.RateFor(domain.PlanFree),
		MaxServices:       3,
		MaxCoverageZones:  1,
		IsActive:          true,
	}
}

func (s *Service) GetPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.repo.ListPlans(ctx)
}

// GetCurrentSubscription returns the salon's active subscription and its
// plan. Salons with no live subscription sit on a virtual free tier.
func (s *Service) GetCurrentSubscription(ctx context.Context, salonID int64) (*domain.Subscription, *domain.Plan, error) {
	sub, err := s.repo.GetActiveBySalonID(ctx, salonID)
	if err != nil {
		return nil, nil, err
	}

	if sub == nil || sub.IsExpired() {
		freePlan, _ := s.repo.GetPlanByID(ctx, domain.PlanFree)
		if freePlan == nil {
			freePlan = defaultFreePlan()
		}
		return &domain.Subscription{
			SalonID:       salonID,
			PlanID:        domain.PlanFree,
			Status:        domain.SubscriptionActive,
			BillingPeriod: domain.BillingMonthly,
			StartedAt:     time.Now(),
		}, freePlan, nil
	}

	plan, err := s.repo.GetPlanByID(ctx, sub.PlanID)
	if err != nil || plan == nil {
		plan = defaultFreePlan()
	}
	return sub, plan, nil
}

// GetPlanForSalon resolves the tier the commission engine charges at.
func (s *Service) GetPlanForSalon(ctx context.Context, salonID int64) (domain.PlanID, error) {
	sub, err := s.repo.GetActiveBySalonID(ctx, salonID)
	if err != nil {
		return domain.PlanFree, err
	}
	if sub == nil || sub.IsExpired() {
		return domain.PlanFree, nil
	}
	return sub.PlanID, nil
}

// Subscribe puts the owner's salon on a paid tier, replacing any current
// subscription.
func (s *Service) Subscribe(ctx context.Context, ownerID int64, req SubscribeRequest) (*domain.Subscription, error) {
	if err := s.checkOwnership(ctx, ownerID, req.SalonID); err != nil {
		return nil, err
	}

	planID := domain.PlanID(req.PlanID)
	if !planID.Valid() {
		return nil, ErrPlanNotFound
	}
	plan, err := s.repo.GetPlanByID(ctx, planID)
	if err != nil || plan == nil || !plan.IsActive {
		return nil, ErrPlanNotFound
	}

	existing, err := s.repo.GetActiveBySalonID(ctx, req.SalonID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.PlanID == planID && !existing.IsExpired() {
		return nil, ErrAlreadySubscribed
	}

	period := domain.BillingPeriod(req.BillingPeriod)
	var expiresAt time.Time
	switch period {
	case domain.BillingMonthly:
		expiresAt = time.Now().AddDate(0, 1, 0)
	case domain.BillingYearly:
		expiresAt = time.Now().AddDate(1, 0, 0)
	default:
		return nil, ErrInvalidBillingPeriod
	}

	if existing != nil {
		_ = s.repo.Cancel(ctx, existing.ID, fmt.Sprintf("changed to %s", planID))
	}

	now := time.Now()
	sub := &domain.Subscription{
		ID:            uuid.NewString(),
		SalonID:       req.SalonID,
		PlanID:        planID,
		Status:        domain.SubscriptionActive,
		BillingPeriod: period,
		StartedAt:     now,
		ExpiresAt:     sql.NullTime{Time: expiresAt, Valid: true},
		AutoRenew:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel drops the salon back to the free tier.
func (s *Service) Cancel(ctx context.Context, ownerID int64, req CancelRequest) error {
	if err := s.checkOwnership(ctx, ownerID, req.SalonID); err != nil {
		return err
	}

	sub, err := s.repo.GetActiveBySalonID(ctx, req.SalonID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	if sub.PlanID == domain.PlanFree {
		return ErrCannotCancelFree
	}
	return s.repo.Cancel(ctx, sub.ID, req.Reason)
}

// CanAddService reports whether the salon may add another offering under
// its plan, returning a LimitError when the cap is hit.
func (s *Service) CanAddService(ctx context.Context, salonID int64) error {
	_, plan, err := s.GetCurrentSubscription(ctx, salonID)
	if err != nil {
		return err
	}
	if plan.MaxServices == -1 {
		return nil
	}
	count, err := s.services.CountActiveForSalon(ctx, salonID)
	if err != nil {
		return err
	}
	if count >= plan.MaxServices {
		return &LimitError{
			Err:       ErrServiceLimitReached,
			Current:   count,
			Limit:     plan.MaxServices,
			PlanName:  string(plan.ID),
			UpgradeTo: nextPlan(plan.ID),
		}
	}
	return nil
}

// ExpireOld is the background sweep moving lapsed subscriptions to
// expired.
func (s *Service) ExpireOld(ctx context.Context) (int, error) {
	return s.repo.ExpireOld(ctx)
}

func (s *Service) checkOwnership(ctx context.Context, ownerID, salonID int64) error {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if salon.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}

func nextPlan(current domain.PlanID) string {
	switch current {
	case domain.PlanFree:
		return string(domain.PlanStarter)
	case domain.PlanStarter:
		return string(domain.PlanPro)
	case domain.PlanPro:
		return string(domain.PlanPremium)
	default:
		return ""
	}
}
