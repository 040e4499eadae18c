package domain

import "time"

type Salon struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"owner_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
	City        string  `json:"city"`
	Address     string  `json:"address,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Phone       string  `json:"phone,omitempty"`

	// Rating and ReviewsCount are derived: recomputed from the full review
	// set after every review create/update/delete.
	Rating       int `json:"rating"`
	ReviewsCount int `json:"reviews_count"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Services []SalonService `json:"services,omitempty" gorm:"foreignKey:SalonID"`
}

// SalonService is a bookable offering (cut, color, ...) with a fixed
// duration and a price in minor currency units.
type SalonService struct {
	ID              int64     `json:"id"`
	SalonID         int64     `json:"salon_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	PriceCents      int64     `json:"price_cents" validate:"required,gte=0"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CoverageZone is a home-service area for a salon. A client address is
// inside the zone when its great-circle distance to the zone center is
// within RadiusKm.
type CoverageZone struct {
	ID                 int64     `json:"id"`
	SalonID            int64     `json:"salon_id" validate:"required"`
	City               string    `json:"city"`
	PostalCode         string    `json:"postal_code,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	RadiusKm           float64   `json:"radius_km" validate:"gt=0"`
	AdditionalFeeCents int64     `json:"additional_fee_cents"`
	CreatedAt          time.Time `json:"created_at"`
}
