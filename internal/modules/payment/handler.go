package payment

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"salonbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the payment endpoints. The webhook goes on the
// public group: the processor authenticates with the signature header,
// not a user token.
func (h *Handler) RegisterRoutes(public, protected, owner *gin.RouterGroup) {
	if public != nil {
		public.POST("/webhooks/stripe", h.Webhook)
	}
	if protected != nil {
		protected.POST("/payments/intent", h.CreateIntent)
	}
	if owner != nil {
		owner.GET("/salons/:id/payments/stats", h.Stats)
	}
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	clientID := c.GetInt64("user_id")
	if clientID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	out, err := h.svc.CreatePaymentIntent(c.Request.Context(), clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE", "Online payments are not configured")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		case errors.Is(err, ErrPaymentCreation):
			response.Error(c, http.StatusInternalServerError, "PAYMENT_CREATION_FAILED", err.Error())
		default:
			response.Error(c, http.StatusBadGateway, "PROCESSOR_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Cannot read payload")
		return
	}

	err = h.svc.HandleWebhookEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Signature verification failed")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE", "Webhook secret is not configured")
		default:
			// Non-2xx makes the processor retry the delivery later.
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"received": true})
}

func (h *Handler) Stats(c *gin.Context) {
	salonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	from, to, err := parsePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PERIOD", err.Error())
		return
	}

	stats, err := h.svc.SalonStats(c.Request.Context(), c.GetInt64("user_id"), salonID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Salon not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your salon")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// parsePeriod reads an optional [from, to) date range; the default is the
// last 30 days.
func parsePeriod(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be YYYY-MM-DD")
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be YYYY-MM-DD")
		}
		// Make the end date inclusive.
		to = to.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must precede to")
	}
	return from, to, nil
}
