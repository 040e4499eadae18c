package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"salonbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, owner *gin.RouterGroup) {
	if public != nil {
		public.GET("/plans", h.GetPlans)
	}
	if owner != nil {
		owner.GET("/salons/:id/subscription", h.GetCurrent)
		owner.POST("/subscriptions", h.Subscribe)
		owner.POST("/subscriptions/cancel", h.Cancel)
	}
}

func (h *Handler) GetPlans(c *gin.Context) {
	plans, err := h.svc.GetPlans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load plans")
		return
	}

	resp := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, planToResponse(&plans[i]))
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetCurrent(c *gin.Context) {
	salonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	if err := h.svc.checkOwnership(c.Request.Context(), c.GetInt64("user_id"), salonID); err != nil {
		h.writeError(c, err)
		return
	}

	sub, plan, err := h.svc.GetCurrentSubscription(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, subscriptionToResponse(sub, plan))
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sub, err := h.svc.Subscribe(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	plan, _ := h.svc.repo.GetPlanByID(c.Request.Context(), sub.PlanID)
	response.Success(c, http.StatusCreated, subscriptionToResponse(sub, plan))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), c.GetInt64("user_id"), req); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		response.Error(c, http.StatusNotFound, "PLAN_NOT_FOUND", "Plan not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Salon not found")
	case errors.Is(err, ErrSubscriptionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No active subscription")
	case errors.Is(err, ErrAlreadySubscribed):
		response.Error(c, http.StatusConflict, "ALREADY_SUBSCRIBED", "Salon is already on this plan")
	case errors.Is(err, ErrCannotCancelFree):
		response.Error(c, http.StatusBadRequest, "CANNOT_CANCEL_FREE", "The free tier cannot be cancelled")
	case errors.Is(err, ErrInvalidBillingPeriod):
		response.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "Billing period must be monthly or yearly")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your salon")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
