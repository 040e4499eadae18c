package payment

import (
	"context"
	"time"

	"salonbook/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error)
	SetIntentID(ctx context.Context, paymentID int64, intentID string) error
	SetStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus, reason string) error
	GetCompletedForSalon(ctx context.Context, salonID int64, from, to time.Time) ([]domain.Payment, error)
}

type BookingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
}

// PlanSource resolves the salon's current subscription tier; salons with
// no subscription row are on the free tier.
type PlanSource interface {
	GetPlanForSalon(ctx context.Context, salonID int64) (domain.PlanID, error)
}

type StripeAccountReader interface {
	GetBySalonID(ctx context.Context, salonID int64) (*domain.StripeAccount, error)
}

type SalonReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// Processor creates payment intents on the external payments platform.
// Capture, transfer and refunds happen on the platform's side; results
// come back through the webhook.
type Processor interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
}

type CreateIntentParams struct {
	AmountCents        int64
	Currency           string
	DestinationAccount string
	BookingID          int64
	IdempotencyKey     string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}
