package repository

import (
	"context"

	"salonbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StripeAccountRepository struct {
	db *gorm.DB
}

func NewStripeAccountRepository(db *gorm.DB) *StripeAccountRepository {
	return &StripeAccountRepository{db: db}
}

func (r *StripeAccountRepository) GetBySalonID(ctx context.Context, salonID int64) (*domain.StripeAccount, error) {
	var a domain.StripeAccount
	if err := r.db.WithContext(ctx).Where("salon_id = ?", salonID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert keeps one connected account per salon.
func (r *StripeAccountRepository) Upsert(ctx context.Context, a *domain.StripeAccount) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "salon_id"}},
			UpdateAll: true,
		}).
		Create(a).Error
}
