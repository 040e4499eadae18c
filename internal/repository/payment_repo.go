package repository

import (
	"context"
	"time"

	"salonbook/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("stripe_payment_intent_id = ?", intentID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetIntentID stores the processor's id once the intent has been created.
func (r *PaymentRepository) SetIntentID(ctx context.Context, paymentID int64, intentID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", paymentID).
		Update("stripe_payment_intent_id", intentID).Error
}

// SetStatus re-applies a terminal status. Webhook deliveries can repeat, so
// the write sets the same terminal state rather than incrementing anything;
// replays are harmless.
func (r *PaymentRepository) SetStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus, reason string) error {
	updates := map[string]interface{}{"status": status}
	if reason != "" {
		updates["failure_reason"] = reason
	}
	return r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", paymentID).
		Updates(updates).Error
}

// GetCompletedForSalon returns completed payments for a salon inside
// [from, to), for revenue aggregation.
func (r *PaymentRepository) GetCompletedForSalon(ctx context.Context, salonID int64, from, to time.Time) ([]domain.Payment, error) {
	var rows []domain.Payment
	tx := r.db.WithContext(ctx).
		Where("salon_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			salonID, domain.PaymentCompleted, from, to).
		Order("created_at ASC").
		Find(&rows)
	return rows, tx.Error
}
