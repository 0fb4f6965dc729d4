package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/service"
	"github.com/clubrail/content-service/pkg/response"
)

type LocationHandler struct {
	svc service.LocationService
	now func() time.Time
}

func NewLocationHandler(svc service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc, now: time.Now}
}

func (h *LocationHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/locations")
	{
		g.POST("", h.create)
		g.GET("/:location_slug", h.getBySlug)
		g.GET("", h.list)
	}
}

// createLocationRequest carries the location plus its optional weekly hours,
// stored together in one transaction.
type createLocationRequest struct {
	model.Location
	Hours []model.OperatingHours `json:"hours"`
}

func (h *LocationHandler) create(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	loc, err := h.svc.CreateLocation(c.Request.Context(), req.Location, req.Hours)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, loc)
}

func (h *LocationHandler) getBySlug(c *gin.Context) {
	detail, err := h.svc.GetLocation(c.Request.Context(), c.Param("location_slug"), h.now())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, detail)
}

func (h *LocationHandler) list(c *gin.Context) {
	listing, err := h.svc.ListLocations(c.Request.Context(), c.Query("page"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, listing)
}
