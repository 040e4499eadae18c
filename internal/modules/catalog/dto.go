package catalog

import "salonbook/internal/domain"

type CreateSalonRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required,min=2"`
	Description string  `json:"description"`
	City        string  `json:"city" binding:"required" validate:"required"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Phone       string  `json:"phone" validate:"omitempty,phone"`
}

type UpdateSalonRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type ListSalonsQuery struct {
	City      string `form:"city"`
	MinRating int    `form:"min_rating"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

type SalonListResponse struct {
	Salons []domain.Salon `json:"salons"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type CreateServiceRequest struct {
	SalonID         int64  `json:"salon_id" binding:"required"`
	Name            string `json:"name" binding:"required" validate:"required,min=2"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required" validate:"required,gt=0,lte=480"`
	PriceCents      int64  `json:"price_cents" validate:"gte=0"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	PriceCents      *int64  `json:"price_cents,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

type CreateZoneRequest struct {
	SalonID            int64   `json:"salon_id" binding:"required"`
	City               string  `json:"city" binding:"required"`
	PostalCode         string  `json:"postal_code"`
	Latitude           float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude          float64 `json:"longitude" validate:"gte=-180,lte=180"`
	RadiusKm           float64 `json:"radius_km" binding:"required" validate:"gt=0,lte=100"`
	AdditionalFeeCents int64   `json:"additional_fee_cents" validate:"gte=0"`
}

// CoverageMatch is one zone that covers the requested point, with the
// distance from the zone center.
type CoverageMatch struct {
	Zone       domain.CoverageZone `json:"zone"`
	DistanceKm float64             `json:"distance_km"`
}
