package handler

import (
	"net/http"

	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	svc *service.CategoryService
	log *zap.Logger
}

func NewCategoryHandler(svc *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Video string `json:"video"`
}

// CategoryUpdateRequest leaves absent fields untouched.
type CategoryUpdateRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
	Video *string `json:"video"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Create(c.Request.Context(), service.CategoryInput{
		Name:  req.Name,
		Image: req.Image,
		Video: req.Video,
	})
	if err != nil {
		respondError(c, h.log, "category create", err)
		return
	}
	respond(c, http.StatusCreated, "Category created successfully", gin.H{"category": item, "categories": list})
}

func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "category list", err)
		return
	}
	respondList(c, "Categories fetched successfully", list, len(list))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CategoryUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Update(c.Request.Context(), id, service.CategoryPatch{
		Name:  req.Name,
		Image: req.Image,
		Video: req.Video,
	})
	if err != nil {
		respondError(c, h.log, "category update", err)
		return
	}
	respond(c, http.StatusOK, "Category updated successfully", gin.H{"category": item, "categories": list})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "category delete", err)
		return
	}
	respond(c, http.StatusOK, "Category deleted successfully", gin.H{"categories": list})
}
