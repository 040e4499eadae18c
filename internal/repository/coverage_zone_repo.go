package repository

import (
	"context"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type CoverageZoneRepository struct {
	db *gorm.DB
}

func NewCoverageZoneRepository(db *gorm.DB) *CoverageZoneRepository {
	return &CoverageZoneRepository{db: db}
}

func (r *CoverageZoneRepository) Create(ctx context.Context, z *domain.CoverageZone) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *CoverageZoneRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.CoverageZone, error) {
	var zones []domain.CoverageZone
	err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Find(&zones).Error
	return zones, err
}

func (r *CoverageZoneRepository) GetByCity(ctx context.Context, city string) ([]domain.CoverageZone, error) {
	var zones []domain.CoverageZone
	err := r.db.WithContext(ctx).
		Where("city = ?", city).
		Find(&zones).Error
	return zones, err
}

func (r *CoverageZoneRepository) Delete(ctx context.Context, id, salonID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&domain.CoverageZone{}).Error
}
