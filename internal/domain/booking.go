package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentMethod is how the client chose to pay at booking time.
type PaymentMethod string

const (
	PayFull    PaymentMethod = "full"
	PayDeposit PaymentMethod = "deposit"
	PayOnSite  PaymentMethod = "on_site"
)

// Booking holds a time slot on a salon's calendar. BookingDate is the
// calendar day (midnight UTC); StartTime/EndTime are "HH:MM" within that
// day, half-open [start, end). Only pending and confirmed bookings block
// the slot.
type Booking struct {
	ID              int64         `json:"id"`
	SalonID         int64         `json:"salon_id" validate:"required"`
	ServiceID       int64         `json:"service_id" validate:"required"`
	ClientID        int64         `json:"client_id" validate:"required"`
	BookingDate     time.Time     `json:"booking_date" validate:"required"`
	StartTime       string        `json:"start_time" validate:"required"`
	EndTime         string        `json:"end_time" validate:"required"`
	Status          BookingStatus `json:"status"`
	TotalPriceCents int64         `json:"total_price_cents" validate:"gte=0"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Notes           string        `json:"notes,omitempty" gorm:"type:text"`

	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client  *User         `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Service *SalonService `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// Blocks reports whether the booking occupies its slot. Cancelled and
// completed bookings never conflict with new ones.
func (b *Booking) Blocks() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
