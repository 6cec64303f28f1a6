package handler

import (
	"net/http"

	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TagHandler struct {
	svc *service.TagService
	log *zap.Logger
}

func NewTagHandler(svc *service.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: log}
}

type TagRequest struct {
	Name string `json:"name"`
}

func (h *TagHandler) Create(c *gin.Context) {
	var req TagRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.log, "tag create", err)
		return
	}
	respond(c, http.StatusCreated, "Tag created successfully", gin.H{"tag": item, "tags": list})
}

func (h *TagHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "tag list", err)
		return
	}
	respondList(c, "Tags fetched successfully", list, len(list))
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req TagRequest
	if !bindJSON(c, &req) {
		return
	}
	item, list, err := h.svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, h.log, "tag update", err)
		return
	}
	respond(c, http.StatusOK, "Tag updated successfully", gin.H{"tag": item, "tags": list})
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "tag delete", err)
		return
	}
	respond(c, http.StatusOK, "Tag deleted successfully", gin.H{"tags": list})
}
