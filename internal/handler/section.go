package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/service"
	"github.com/clubrail/content-service/pkg/response"
)

type SectionHandler struct {
	svc service.SectionService
}

func NewSectionHandler(svc service.SectionService) *SectionHandler {
	return &SectionHandler{svc: svc}
}

func (h *SectionHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/sections")
	{
		g.POST("", h.create)
		g.GET("/:section_slug", h.landing)
		g.GET("", h.list)
	}
}

func (h *SectionHandler) create(c *gin.Context) {
	var req model.Section
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	sec, err := h.svc.CreateSection(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, sec)
}

func (h *SectionHandler) landing(c *gin.Context) {
	landing, err := h.svc.Landing(c.Request.Context(), c.Param("section_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, landing)
}

func (h *SectionHandler) list(c *gin.Context) {
	sections, err := h.svc.ListSections(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, sections)
}
