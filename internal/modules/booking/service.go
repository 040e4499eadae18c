package booking

import (
	"context"
	"errors"
	"time"

	"salonbook/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	services ServiceReader
	salons   SalonReader
}

func NewService(bookings BookingRepository, services ServiceReader, salons SalonReader) *Service {
	return &Service{
		bookings: bookings,
		services: services,
		salons:   salons,
	}
}

// CheckAvailability reports whether [start, end) on the given day is free
// of pending/confirmed bookings for the salon. The check is advisory: a
// concurrent insert can still win the slot between this read and the
// write, which the bookings table resolves with a uniqueness constraint
// (mapped to ErrOverbooking on Create).
func (s *Service) CheckAvailability(ctx context.Context, salonID int64, date time.Time, startTime, endTime string) (bool, error) {
	start, err := minutesOfDay(startTime)
	if err != nil {
		return false, ErrValidation
	}
	end, err := minutesOfDay(endTime)
	if err != nil {
		return false, ErrValidation
	}
	if end <= start {
		return false, ErrValidation
	}

	existing, err := s.bookings.GetActiveForSalonOnDate(ctx, salonID, dateOnly(date))
	if err != nil {
		return false, err
	}

	for _, b := range existing {
		bStart, err := minutesOfDay(b.StartTime)
		if err != nil {
			continue // malformed stored row never blocks
		}
		bEnd, err := minutesOfDay(b.EndTime)
		if err != nil {
			continue
		}
		if bStart < end && bEnd > start {
			return false, nil
		}
	}
	return true, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}
	date = dateOnly(date)

	start, err := minutesOfDay(req.StartTime)
	if err != nil {
		return nil, ErrValidation
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	switch method {
	case domain.PayFull, domain.PayDeposit, domain.PayOnSite:
	default:
		return nil, ErrValidation
	}

	today := dateOnly(time.Now().UTC())
	if date.Before(today) {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if svc.SalonID != req.SalonID || !svc.IsActive {
		return nil, ErrValidation
	}

	// The slot must end on the same day; "15:04" cannot express midnight.
	end := start + svc.DurationMinutes
	if end >= 24*60 {
		return nil, ErrValidation
	}
	endTime := formatMinutes(end)

	ok, err := s.CheckAvailability(ctx, req.SalonID, date, req.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	b := &domain.Booking{
		SalonID:         req.SalonID,
		ServiceID:       req.ServiceID,
		ClientID:        req.ClientID,
		BookingDate:     date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		Status:          domain.BookingPending,
		TotalPriceCents: svc.PriceCents,
		PaymentMethod:   method,
		Notes:           req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
				return nil, ErrOverbooking
			}
		}
		return nil, err
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.GetByClientID(ctx, clientID, limit, offset)
}

// GetSalonBookings lists a salon's bookings; only its owner may read them.
func (s *Service) GetSalonBookings(ctx context.Context, salonID, actorID int64, limit, offset int) ([]domain.Booking, error) {
	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if salon.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return s.bookings.GetBySalonID(ctx, salonID, limit, offset)
}

// UpdateStatus moves a booking along its lifecycle. The salon owner
// confirms pending bookings and completes confirmed ones; anything else
// is an invalid transition.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorID int64, newStatus string) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	salon, err := s.salons.GetByID(ctx, b.SalonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != actorID {
		return nil, ErrForbidden
	}

	valid := (b.Status == domain.BookingPending && newStatus == string(domain.BookingConfirmed)) ||
		(b.Status == domain.BookingConfirmed && newStatus == string(domain.BookingCompleted))
	if !valid {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, bookingID)
}

// Cancel cancels a booking with a mandatory reason. The client who booked
// or the salon owner may cancel; terminal bookings stay as they are.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, ErrValidation
	}

	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if b.ClientID != actorID {
		salon, err := s.salons.GetByID(ctx, b.SalonID)
		if err != nil {
			return nil, err
		}
		if salon.OwnerID != actorID {
			return nil, ErrForbidden
		}
	}

	if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, bookingID)
}

// ConfirmPaid is invoked from the payment webhook path once the deposit or
// full amount is captured.
func (s *Service) ConfirmPaid(ctx context.Context, bookingID int64) error {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status != domain.BookingPending {
		return nil // already confirmed or terminal; webhook replays are fine
	}
	return s.bookings.UpdateStatus(ctx, bookingID, string(domain.BookingConfirmed))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// minutesOfDay parses "HH:MM" into minutes since midnight.
func minutesOfDay(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}
