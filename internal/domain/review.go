package domain

import "time"

// Review is one client's rating of a salon. One review per (salon, client)
// pair, enforced by a unique index.
type Review struct {
	ID        int64     `json:"id"`
	SalonID   int64     `json:"salon_id" gorm:"uniqueIndex:idx_one_review_per_client"`
	ClientID  int64     `json:"client_id" gorm:"uniqueIndex:idx_one_review_per_client"`
	BookingID *int64    `json:"booking_id,omitempty"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
