package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook/internal/domain"
	"salonbook/internal/modules/commission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	payments PaymentRepository
	bookings BookingStore
	plans    PlanSource
	accounts StripeAccountReader
	salons   SalonReader
	proc     Processor

	currency      string
	webhookSecret string
	loggerf       func(format string, args ...interface{})
}

func NewService(
	payments PaymentRepository,
	bookings BookingStore,
	plans PlanSource,
	accounts StripeAccountReader,
	salons SalonReader,
	proc Processor,
	currency, webhookSecret string,
) *Service {
	if currency == "" {
		currency = "eur"
	}
	return &Service{
		payments:      payments,
		bookings:      bookings,
		plans:         plans,
		accounts:      accounts,
		salons:        salons,
		proc:          proc,
		currency:      currency,
		webhookSecret: webhookSecret,
		loggerf:       func(string, ...interface{}) {},
	}
}

// SetLogger overrides the no-op logger.
func (s *Service) SetLogger(loggerf func(format string, args ...interface{})) {
	if loggerf != nil {
		s.loggerf = loggerf
	}
}

// CreatePaymentIntent charges the online part of a booking: the full price
// when the client chose to pay everything upfront, the 20% deposit
// otherwise. The platform commission is carved out of the charged amount
// at the salon's current tier rate.
func (s *Service) CreatePaymentIntent(ctx context.Context, clientID int64, req CreateIntentRequest) (*CreateIntentResponse, error) {
	if s.proc == nil {
		return nil, ErrNotConfigured
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, fmt.Errorf("%w: booking is %s", ErrValidation, b.Status)
	}
	if b.PaymentMethod == domain.PayOnSite {
		return nil, fmt.Errorf("%w: on-site bookings are settled at the salon", ErrValidation)
	}

	// A salon without a subscription row already resolves to the free tier;
	// an error here is a real store failure, and charging at a guessed rate
	// would overbill paid tiers. Surface it instead.
	plan, err := s.plans.GetPlanForSalon(ctx, b.SalonID)
	if err != nil {
		return nil, fmt.Errorf("plan lookup for salon %d: %w", b.SalonID, err)
	}

	total := b.TotalPriceCents
	payAmount := total
	if b.PaymentMethod == domain.PayDeposit {
		payAmount = commission.Deposit(total)
	}
	fee, salonShare := commission.Split(payAmount, plan)

	p := &domain.Payment{
		BookingID:         b.ID,
		SalonID:           b.SalonID,
		ClientID:          b.ClientID,
		AmountCents:       payAmount,
		DepositCents:      commission.Deposit(total),
		CommissionCents:   fee,
		SalonAmountCents:  salonShare,
		RemainingCents:    total - payAmount,
		CommissionRateBps: commission.RateFor(plan),
		Currency:          s.currency,
		Status:            domain.PaymentPending,
		IdempotencyKey:    uuid.NewString(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentCreation, err)
	}

	var destination string
	if s.accounts != nil {
		if acc, err := s.accounts.GetBySalonID(ctx, b.SalonID); err == nil && acc.ChargesEnabled {
			destination = acc.AccountID
		}
	}

	intent, err := s.proc.CreateIntent(ctx, CreateIntentParams{
		AmountCents:        payAmount,
		Currency:           s.currency,
		DestinationAccount: destination,
		BookingID:          b.ID,
		IdempotencyKey:     p.IdempotencyKey,
	})
	if err != nil {
		if serr := s.payments.SetStatus(ctx, p.ID, domain.PaymentFailed, err.Error()); serr != nil {
			s.loggerf("payment: marking payment %d failed: %v", p.ID, serr)
		}
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	if err := s.payments.SetIntentID(ctx, p.ID, intent.ID); err != nil {
		return nil, err
	}

	return &CreateIntentResponse{
		PaymentID:       p.ID,
		IntentID:        intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     payAmount,
		DepositCents:    p.DepositCents,
		CommissionCents: fee,
		SalonCents:      salonShare,
		RemainingCents:  p.RemainingCents,
		Currency:        s.currency,
	}, nil
}

// HandleWebhookEvent applies a signed processor notification. Deliveries
// repeat, so every transition re-sets a terminal state and replays are
// no-ops.
func (s *Service) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	if s.webhookSecret == "" {
		return ErrNotConfigured
	}
	if !verifySignature(payload, signature, s.webhookSecret) {
		return ErrInvalidSignature
	}

	var ev webhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: malformed event payload", ErrValidation)
	}

	intentID := ev.Data.Object.ID
	if ev.Data.Object.PaymentIntent != "" {
		// charge.* events carry the intent id one level deeper.
		intentID = ev.Data.Object.PaymentIntent
	}
	if intentID == "" {
		return fmt.Errorf("%w: event has no payment intent", ErrValidation)
	}

	p, err := s.payments.GetByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Events for intents we did not create (or already pruned) are
			// acknowledged so the processor stops retrying.
			s.loggerf("payment: webhook %s for unknown intent %s", ev.Type, intentID)
			return nil
		}
		return err
	}

	switch ev.Type {
	case "payment_intent.succeeded":
		if err := s.payments.SetStatus(ctx, p.ID, domain.PaymentCompleted, ""); err != nil {
			return err
		}
		return s.confirmBooking(ctx, p.BookingID)

	case "payment_intent.payment_failed":
		if p.Status == domain.PaymentCompleted {
			// Late failure after a recorded success; keep the success.
			s.loggerf("payment: ignoring failure event for completed payment %d", p.ID)
			return nil
		}
		return s.payments.SetStatus(ctx, p.ID, domain.PaymentFailed, "payment failed")

	case "charge.refunded":
		if err := s.payments.SetStatus(ctx, p.ID, domain.PaymentRefunded, ""); err != nil {
			return err
		}
		return s.bookings.CancelWithReason(ctx, p.BookingID, "payment refunded")

	default:
		s.loggerf("payment: ignoring webhook event %s", ev.Type)
		return nil
	}
}

// confirmBooking moves a pending booking to confirmed once its payment
// settled; replayed events find it already confirmed and do nothing.
func (s *Service) confirmBooking(ctx context.Context, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status != domain.BookingPending {
		return nil
	}
	return s.bookings.UpdateStatus(ctx, bookingID, string(domain.BookingConfirmed))
}

// SalonStats aggregates completed payments for the owner's salon over
// [from, to). A period with no payments yields an all-zero result.
func (s *Service) SalonStats(ctx context.Context, ownerID, salonID int64, from, to time.Time) (*Stats, error) {
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

	rows, err := s.payments.GetCompletedForSalon(ctx, salonID, from, to)
	if err != nil {
		return nil, err
	}

	out := &Stats{}
	for _, p := range rows {
		out.TotalRevenueCents += p.AmountCents
		out.TotalCommissionCents += p.CommissionCents
		out.NetRevenueCents += p.SalonAmountCents
		out.TransactionCount++
	}
	if out.TransactionCount > 0 {
		// Same half-up rounding as the commission math.
		out.AverageTransaction = (out.TotalRevenueCents + out.TransactionCount/2) / out.TransactionCount
	}
	return out, nil
}

// verifySignature checks a "t=<unix>,v1=<hex>" header against an
// HMAC-SHA256 of "<t>.<payload>".
func verifySignature(payload []byte, header, secret string) bool {
	var ts, sig string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "v1":
			sig = v
		}
	}
	if ts == "" || sig == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(sig))
}
