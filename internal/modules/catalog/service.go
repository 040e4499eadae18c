package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"salonbook/internal/domain"
	"salonbook/internal/pkg/geo"
	"salonbook/internal/pkg/validator"
	"salonbook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	salons   SalonRepository
	services ServiceRepository
	zones    ZoneRepository
	limits   PlanLimiter
}

func NewService(salons SalonRepository, services ServiceRepository, zones ZoneRepository, limits PlanLimiter) *Service {
	return &Service{salons: salons, services: services, zones: zones, limits: limits}
}

func (s *Service) ListSalons(ctx context.Context, q ListSalonsQuery) (*SalonListResponse, error) {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	salons, total, err := s.salons.GetAll(ctx, repository.SalonFilters{
		City:      strings.TrimSpace(q.City),
		MinRating: q.MinRating,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &SalonListResponse{Salons: salons, Total: total, Limit: q.Limit, Offset: q.Offset}, nil
}

func (s *Service) GetSalon(ctx context.Context, id int64) (*domain.Salon, error) {
	salon, err := s.salons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return salon, nil
}

func (s *Service) CreateSalon(ctx context.Context, ownerID int64, req CreateSalonRequest) (*domain.Salon, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	salon := &domain.Salon{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		City:        strings.TrimSpace(req.City),
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Phone:       req.Phone,
		IsActive:    true,
	}
	if err := s.salons.Create(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

func (s *Service) UpdateSalon(ctx context.Context, ownerID, salonID int64, req UpdateSalonRequest) (*domain.Salon, error) {
	salon, err := s.ownedSalon(ctx, ownerID, salonID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		salon.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Latitude != nil {
		salon.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		salon.Longitude = *req.Longitude
	}
	if req.IsActive != nil {
		salon.IsActive = *req.IsActive
	}

	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

func (s *Service) MySalons(ctx context.Context, ownerID int64) ([]domain.Salon, error) {
	return s.salons.GetByOwnerID(ctx, ownerID)
}

// AddService creates an offering after the plan limit check passes.
func (s *Service) AddService(ctx context.Context, ownerID int64, req CreateServiceRequest) (*domain.SalonService, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	if _, err := s.ownedSalon(ctx, ownerID, req.SalonID); err != nil {
		return nil, err
	}
	if s.limits != nil {
		if err := s.limits.CanAddService(ctx, req.SalonID); err != nil {
			return nil, err
		}
	}

	svc := &domain.SalonService{
		SalonID:         req.SalonID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		IsActive:        true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, ownerID, serviceID int64, req UpdateServiceRequest) (*domain.SalonService, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.ownedSalon(ctx, ownerID, svc.SalonID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		svc.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeactivateService(ctx context.Context, ownerID, serviceID int64) error {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.ownedSalon(ctx, ownerID, svc.SalonID); err != nil {
		return err
	}
	return s.services.Deactivate(ctx, serviceID)
}

func (s *Service) ListServices(ctx context.Context, salonID int64) ([]domain.SalonService, error) {
	return s.services.GetBySalonID(ctx, salonID)
}

func (s *Service) AddZone(ctx context.Context, ownerID int64, req CreateZoneRequest) (*domain.CoverageZone, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	if _, err := s.ownedSalon(ctx, ownerID, req.SalonID); err != nil {
		return nil, err
	}

	zone := &domain.CoverageZone{
		SalonID:            req.SalonID,
		City:               strings.TrimSpace(req.City),
		PostalCode:         req.PostalCode,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		RadiusKm:           req.RadiusKm,
		AdditionalFeeCents: req.AdditionalFeeCents,
	}
	if err := s.zones.Create(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *Service) ListZones(ctx context.Context, salonID int64) ([]domain.CoverageZone, error) {
	return s.zones.GetBySalonID(ctx, salonID)
}

func (s *Service) DeleteZone(ctx context.Context, ownerID, zoneID, salonID int64) error {
	if _, err := s.ownedSalon(ctx, ownerID, salonID); err != nil {
		return err
	}
	return s.zones.Delete(ctx, zoneID, salonID)
}

// FindZonesCovering returns the zones in a city whose radius reaches the
// given point, closest center first. An empty result means no salon
// serves that address at home.
func (s *Service) FindZonesCovering(ctx context.Context, city string, lat, lon float64) ([]CoverageMatch, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}

	zones, err := s.zones.GetByCity(ctx, strings.TrimSpace(city))
	if err != nil {
		return nil, err
	}

	matches := make([]CoverageMatch, 0)
	for _, z := range zones {
		d := geo.HaversineKm(z.Latitude, z.Longitude, lat, lon)
		if d <= z.RadiusKm {
			matches = append(matches, CoverageMatch{Zone: z, DistanceKm: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches, nil
}

func (s *Service) ownedSalon(ctx context.Context, ownerID, salonID int64) (*domain.Salon, error) {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if salon.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return salon, nil
}
