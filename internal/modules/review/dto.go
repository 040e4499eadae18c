package review

type CreateReviewRequest struct {
	SalonID   int64  `json:"salon_id" validate:"required,gt=0"`
	BookingID *int64 `json:"booking_id,omitempty"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment,omitempty"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}
