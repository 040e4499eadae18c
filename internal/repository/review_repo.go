package repository

import (
	"context"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetBySalon(ctx context.Context, salonID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []domain.Review
	tx := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	return rows, tx.Error
}

// GetAllBySalon returns every review row for a salon, for the read-recompute-
// write rating aggregation. Per-salon review counts are small, so the full
// fetch is acceptable.
func (r *ReviewRepository) GetAllBySalon(ctx context.Context, salonID int64) ([]domain.Review, error) {
	var rows []domain.Review
	tx := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&rows)
	return rows, tx.Error
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}
