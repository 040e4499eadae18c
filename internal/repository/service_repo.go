package repository

import (
	"context"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.SalonService) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	var s domain.SalonService
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) GetBySalonID(ctx context.Context, salonID int64) ([]domain.SalonService, error) {
	var services []domain.SalonService
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Order("name ASC").
		Find(&services).Error
	return services, err
}

// CountActiveForSalon counts the salon's live offerings, for plan limit
// enforcement.
func (r *ServiceRepository) CountActiveForSalon(ctx context.Context, salonID int64) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.SalonService{}).
		Where("salon_id = ? AND is_active = ?", salonID, true).
		Count(&n).Error
	return int(n), err
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.SalonService) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.SalonService{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
