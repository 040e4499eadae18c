package repository

import (
	"context"
	"time"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	SalonID         int64      `gorm:"column:salon_id"`
	ServiceID       int64      `gorm:"column:service_id"`
	ClientID        int64      `gorm:"column:client_id"`
	BookingDate     time.Time  `gorm:"column:booking_date"`
	StartTime       string     `gorm:"column:start_time"`
	EndTime         string     `gorm:"column:end_time"`
	Status          string     `gorm:"column:status"`
	TotalPriceCents int64      `gorm:"column:total_price_cents"`
	PaymentMethod   string     `gorm:"column:payment_method"`
	Notes           *string    `gorm:"column:notes"`
	CancelReason    *string    `gorm:"column:cancellation_reason"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		SalonID:            m.SalonID,
		ServiceID:          m.ServiceID,
		ClientID:           m.ClientID,
		BookingDate:        m.BookingDate,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		Status:             domain.BookingStatus(m.Status),
		TotalPriceCents:    m.TotalPriceCents,
		PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
		Notes:              notes,
		CancellationReason: reason,
		CancelledAt:        m.CancelledAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:              b.ID,
		SalonID:         b.SalonID,
		ServiceID:       b.ServiceID,
		ClientID:        b.ClientID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          string(b.Status),
		TotalPriceCents: b.TotalPriceCents,
		PaymentMethod:   string(b.PaymentMethod),
		Notes:           notes,
		CancelReason:    reason,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetActiveForSalonOnDate returns the pending and confirmed bookings that
// occupy slots on the given day. Cancelled and completed rows are excluded
// because they cannot conflict.
func (r *BookingRepository) GetActiveForSalonOnDate(ctx context.Context, salonID int64, date time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("salon_id = ? AND booking_date = ? AND status IN ?",
			salonID, date, []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Order("start_time ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByClientID(ctx context.Context, clientID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("booking_date DESC, start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetBySalonID(ctx context.Context, salonID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("booking_date DESC, start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]interface{}{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        now,
		}).Error
}

// HasCompletedBookingForSalon gates review creation: a client may only
// review a salon they actually visited.
func (r *BookingRepository) HasCompletedBookingForSalon(ctx context.Context, clientID, salonID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("client_id = ? AND salon_id = ? AND status = ?",
			clientID, salonID, string(domain.BookingCompleted)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
