package repository

import (
	"context"
	"errors"
	"time"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_monthly_cents ASC").
		Find(&plans).Error
	return plans, err
}

func (r *SubscriptionRepository) GetPlanByID(ctx context.Context, id domain.PlanID) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetActiveBySalonID returns the salon's latest active subscription, or
// (nil, nil) when the salon has none.
func (r *SubscriptionRepository) GetActiveBySalonID(ctx context.Context, salonID int64) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND status = ?", salonID, domain.SubscriptionActive).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) Cancel(ctx context.Context, id string, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        domain.SubscriptionCancelled,
			"cancel_reason": reason,
			"cancelled_at":  now,
			"updated_at":    now,
		}).Error
}

// ExpireOld flips active subscriptions past their expiry to expired and
// returns how many rows changed. Run from the expiry job.
func (r *SubscriptionRepository) ExpireOld(ctx context.Context) (int, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", domain.SubscriptionActive, now).
		Updates(map[string]any{
			"status":     domain.SubscriptionExpired,
			"updated_at": now,
		})
	return int(result.RowsAffected), result.Error
}
