package handler

import (
	"net/http"

	"siteadmin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

type ContactRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	City        string `json:"city"`
	ProjectType string `json:"projectType"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Message     string `json:"message"`
	File        string `json:"file"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	_, err := h.svc.Submit(c.Request.Context(), service.ContactInput{
		FullName:    req.FullName,
		Email:       req.Email,
		City:        req.City,
		ProjectType: req.ProjectType,
		Phone:       req.Phone,
		Company:     req.Company,
		Message:     req.Message,
		File:        req.File,
	})
	if err != nil {
		respondError(c, h.log, "contact submit", err)
		return
	}
	respond(c, http.StatusCreated, "Query submitted successfully", nil)
}

func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "contact list", err)
		return
	}
	respondList(c, "Queries fetched successfully", list, len(list))
}
