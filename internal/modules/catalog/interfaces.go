package catalog

import (
	"context"

	"salonbook/internal/domain"
	"salonbook/internal/repository"
)

type SalonRepository interface {
	GetAll(ctx context.Context, f repository.SalonFilters) ([]domain.Salon, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Salon, error)
	Create(ctx context.Context, salon *domain.Salon) error
	Update(ctx context.Context, salon *domain.Salon) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.SalonService) error
	GetByID(ctx context.Context, id int64) (*domain.SalonService, error)
	GetBySalonID(ctx context.Context, salonID int64) ([]domain.SalonService, error)
	Update(ctx context.Context, s *domain.SalonService) error
	Deactivate(ctx context.Context, id int64) error
}

type ZoneRepository interface {
	Create(ctx context.Context, z *domain.CoverageZone) error
	GetBySalonID(ctx context.Context, salonID int64) ([]domain.CoverageZone, error)
	GetByCity(ctx context.Context, city string) ([]domain.CoverageZone, error)
	Delete(ctx context.Context, id, salonID int64) error
}

// PlanLimiter enforces the subscription tier's catalog caps.
type PlanLimiter interface {
	CanAddService(ctx context.Context, salonID int64) error
}
