package booking

import (
	"context"
	"time"

	"salonbook/internal/domain"
)

// BookingRepository is the slice of the store this module reads and writes.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveForSalonOnDate(ctx context.Context, salonID int64, date time.Time) ([]domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error)
	GetBySalonID(ctx context.Context, salonID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
}

// ServiceReader resolves the booked service's duration and price.
type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.SalonService, error)
}

// SalonReader resolves salon ownership for status updates.
type SalonReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}
