package handler

import (
	"net/http"

	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BlogHandler struct {
	svc *service.BlogService
	log *zap.Logger
}

func NewBlogHandler(svc *service.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: log}
}

type BlogRequest struct {
	Heading     string `json:"blogHeading"`
	Description string `json:"blogDesc"`
	Image       string `json:"blogImage"`
	Content     string `json:"blogContent"`
}

// BlogUpdateRequest distinguishes an absent field (nil) from an explicit "".
type BlogUpdateRequest struct {
	Heading     *string `json:"blogHeading"`
	Description *string `json:"blogDesc"`
	Image       *string `json:"blogImage"`
	Content     *string `json:"blogContent"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Create(c.Request.Context(), service.BlogInput{
		Heading:     req.Heading,
		Description: req.Description,
		Image:       req.Image,
		Content:     req.Content,
	})
	if err != nil {
		respondError(c, h.log, "blog create", err)
		return
	}
	respond(c, http.StatusCreated, "Blog created successfully", gin.H{"blog": item, "blogs": list})
}

func (h *BlogHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "blog list", err)
		return
	}
	respondList(c, "Blogs fetched successfully", list, len(list))
}

// Latest returns the three most recent posts.
func (h *BlogHandler) Latest(c *gin.Context) {
	list, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "blog latest", err)
		return
	}
	respondList(c, "Latest blogs fetched successfully", list, len(list))
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "blog get", err)
		return
	}
	respond(c, http.StatusOK, "Blog fetched successfully", item)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req BlogUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Update(c.Request.Context(), id, service.BlogPatch{
		Heading:     req.Heading,
		Description: req.Description,
		Image:       req.Image,
		Content:     req.Content,
	})
	if err != nil {
		respondError(c, h.log, "blog update", err)
		return
	}
	respond(c, http.StatusOK, "Blog updated successfully", gin.H{"blog": item, "blogs": list})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "blog delete", err)
		return
	}
	respond(c, http.StatusOK, "Blog deleted successfully", gin.H{"blogs": list})
}
