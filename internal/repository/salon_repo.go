package repository

import (
	"context"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type SalonFilters struct {
	City      string
	MinRating int
	Limit     int
	Offset    int
}

type SalonRepository struct {
	db *gorm.DB
}

func NewSalonRepository(db *gorm.DB) *SalonRepository {
	return &SalonRepository{db: db}
}

// GetAll returns active salons with optional filters
func (r *SalonRepository) GetAll(ctx context.Context, f SalonFilters) ([]domain.Salon, int64, error) {
	var salons []domain.Salon
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Salon{}).
		Where("is_active = ?", true)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}

	q.Count(&total)

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	err := q.
		Preload("Services", "is_active = ?", true).
		Order("rating DESC, id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&salons).Error

	return salons, total, err
}

func (r *SalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	var salon domain.Salon
	err := r.db.WithContext(ctx).
		Preload("Services", "is_active = ?", true).
		First(&salon, id).Error
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *SalonRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Salon, error) {
	var salons []domain.Salon
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&salons).Error
	return salons, err
}

func (r *SalonRepository) Create(ctx context.Context, salon *domain.Salon) error {
	return r.db.WithContext(ctx).Create(salon).Error
}

func (r *SalonRepository) Update(ctx context.Context, salon *domain.Salon) error {
	return r.db.WithContext(ctx).Save(salon).Error
}

// UpdateRating writes the derived rating fields back to the salon row.
func (r *SalonRepository) UpdateRating(ctx context.Context, salonID int64, rating, reviewsCount int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Salon{}).
		Where("id = ?", salonID).
		Updates(map[string]interface{}{
			"rating":        rating,
			"reviews_count": reviewsCount,
		}).Error
}
