package review

import (
	"context"
	"errors"
	"math"
	"strings"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	salons   SalonRatingWriter
}

func NewService(reviews ReviewRepository, bookings BookingGate, salons SalonRatingWriter) *Service {
	return &Service{reviews: reviews, bookings: bookings, salons: salons}
}

func (s *Service) Create(ctx context.Context, clientID int64, req CreateReviewRequest) (*domain.Review, error) {
	if clientID <= 0 || req.SalonID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	ok, err := s.bookings.HasCompletedBookingForSalon(ctx, clientID, req.SalonID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		SalonID:   req.SalonID,
		ClientID:  clientID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.refreshSalonRating(ctx, req.SalonID); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Update(ctx context.Context, reviewID, clientID int64, req UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rv.ClientID != clientID {
		return nil, ErrForbidden
	}

	rv.Rating = req.Rating
	rv.Comment = req.Comment
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}

	if err := s.refreshSalonRating(ctx, rv.SalonID); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, clientID int64) error {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.ClientID != clientID {
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.refreshSalonRating(ctx, rv.SalonID)
}

func (s *Service) GetBySalon(ctx context.Context, salonID int64, limit, offset int) ([]domain.Review, error) {
	if salonID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.GetBySalon(ctx, salonID, limit, offset)
}

// refreshSalonRating re-reads every review for the salon and writes the
// rounded average and count back to the salon row. Read-recompute-write
// keeps the displayed rating consistent with the current review set;
// O(n) per change is fine at per-salon review counts.
func (s *Service) refreshSalonRating(ctx context.Context, salonID int64) error {
	rows, err := s.reviews.GetAllBySalon(ctx, salonID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return s.salons.UpdateRating(ctx, salonID, 0, 0)
	}

	sum := 0
	for _, rv := range rows {
		sum += rv.Rating
	}
	avg := int(math.Round(float64(sum) / float64(len(rows))))
	return s.salons.UpdateRating(ctx, salonID, avg, len(rows))
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "23505")
}
