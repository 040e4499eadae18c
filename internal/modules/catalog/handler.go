package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"salonbook/internal/modules/subscription"
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
		public.GET("/salons", h.ListSalons)
		public.GET("/salons/:id", h.GetSalon)
		public.GET("/salons/:id/services", h.ListServices)
		public.GET("/salons/:id/zones", h.ListZones)
		public.GET("/coverage", h.FindCoverage)
	}
	if owner != nil {
		owner.POST("/salons", h.CreateSalon)
		owner.PUT("/salons/:id", h.UpdateSalon)
		owner.GET("/my/salons", h.MySalons)
		owner.POST("/services", h.AddService)
		owner.PUT("/services/:id", h.UpdateService)
		owner.DELETE("/services/:id", h.DeactivateService)
		owner.POST("/zones", h.AddZone)
		owner.DELETE("/salons/:id/zones/:zoneId", h.DeleteZone)
	}
}

func (h *Handler) ListSalons(c *gin.Context) {
	var q ListSalonsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	out, err := h.svc.ListSalons(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetSalon(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	salon, err := h.svc.GetSalon(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, salon)
}

func (h *Handler) CreateSalon(c *gin.Context) {
	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	salon, err := h.svc.CreateSalon(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, salon)
}

func (h *Handler) UpdateSalon(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	salon, err := h.svc.UpdateSalon(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, salon)
}

func (h *Handler) MySalons(c *gin.Context) {
	salons, err := h.svc.MySalons(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, salons)
}

func (h *Handler) AddService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	svc, err := h.svc.AddService(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		var limitErr *subscription.LimitError
		if errors.As(err, &limitErr) {
			response.ErrorWithDetails(c, http.StatusPaymentRequired, "PLAN_LIMIT_REACHED", limitErr.Error(), gin.H{
				"current":    limitErr.Current,
				"limit":      limitErr.Limit,
				"plan":       limitErr.PlanName,
				"upgrade_to": limitErr.UpgradeTo,
			})
			return
		}
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	svc, err := h.svc.UpdateService(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeactivateService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	if err := h.svc.DeactivateService(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) ListServices(c *gin.Context) {
	salonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	services, err := h.svc.ListServices(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) AddZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	zone, err := h.svc.AddZone(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, zone)
}

func (h *Handler) ListZones(c *gin.Context) {
	salonID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid salon ID")
		return
	}

	zones, err := h.svc.ListZones(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, zones)
}

func (h *Handler) DeleteZone(c *gin.Context) {
	salonID, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	zoneID, err2 := strconv.ParseInt(c.Param("zoneId"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return
	}

	if err := h.svc.DeleteZone(c.Request.Context(), c.GetInt64("user_id"), zoneID, salonID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// FindCoverage answers "which salons come to this address", matching the
// point against every zone registered for the city.
func (h *Handler) FindCoverage(c *gin.Context) {
	city := c.Query("city")
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if city == "" || err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "city, lat and lon are required")
		return
	}

	matches, err := h.svc.FindZonesCovering(c.Request.Context(), city, lat, lon)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, matches)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your salon")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
