package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/service"
	"github.com/clubrail/content-service/pkg/response"
)

type EventHandler struct {
	svc service.EventService
	now func() time.Time
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc, now: time.Now}
}

func (h *EventHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/events")
	{
		g.POST("", h.create)
		g.GET("/:event_slug", h.getBySlug)
		g.GET("", h.upcoming)
	}
}

func (h *EventHandler) create(c *gin.Context) {
	var req model.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	ev, err := h.svc.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, ev)
}

func (h *EventHandler) getBySlug(c *gin.Context) {
	ev, err := h.svc.GetEvent(c.Request.Context(), c.Param("event_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, ev)
}

func (h *EventHandler) upcoming(c *gin.Context) {
	listing, err := h.svc.Upcoming(c.Request.Context(), h.now(), c.Query("page"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, listing)
}
