package booking

type CreateBookingRequest struct {
	SalonID       int64  `json:"salon_id" binding:"required"`
	ServiceID     int64  `json:"service_id" binding:"required"`
	ClientID      int64  `json:"-"`
	BookingDate   string `json:"booking_date" binding:"required"` // 2006-01-02
	StartTime     string `json:"start_time" binding:"required"`   // 15:04
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

type AvailabilityRequest struct {
	SalonID     int64  `form:"salon_id" binding:"required"`
	BookingDate string `form:"date" binding:"required"`
	StartTime   string `form:"start_time" binding:"required"`
	EndTime     string `form:"end_time" binding:"required"`
}

type AvailabilityResponse struct {
	SalonID   int64  `json:"salon_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}
