package review

import (
	"context"

	"salonbook/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetBySalon(ctx context.Context, salonID int64, limit, offset int) ([]domain.Review, error)
	GetAllBySalon(ctx context.Context, salonID int64) ([]domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

// BookingGate verifies the reviewer actually visited the salon.
type BookingGate interface {
	HasCompletedBookingForSalon(ctx context.Context, clientID, salonID int64) (bool, error)
}

// SalonRatingWriter receives the recomputed aggregate after each change.
type SalonRatingWriter interface {
	UpdateRating(ctx context.Context, salonID int64, rating, reviewsCount int) error
}
