package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubrail/content-service/internal/model"
	"github.com/clubrail/content-service/internal/service"
	"github.com/clubrail/content-service/pkg/response"
)

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler { return &PostHandler{svc: svc} }

func (h *PostHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/posts")
	{
		g.POST("", h.create)
		g.GET("/:post_slug", h.getBySlug)
		g.GET("", h.archive)
	}
}

func (h *PostHandler) create(c *gin.Context) {
	var req model.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parsing details stay internal
		return
	}
	post, err := h.svc.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, post)
}

func (h *PostHandler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetPost(c.Request.Context(), c.Param("post_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, post)
}

// archive serves the paginated listing. The page parameter passes through raw:
// normalization is the paginator's job, not the handler's.
func (h *PostHandler) archive(c *gin.Context) {
	page := c.Query("page")

	var (
		res model.PostArchive
		err error
	)
	if tag := c.Query("tag"); tag != "" {
		res, err = h.svc.ArchiveByTag(c.Request.Context(), tag, page)
	} else {
		res, err = h.svc.Archive(c.Request.Context(), page)
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
