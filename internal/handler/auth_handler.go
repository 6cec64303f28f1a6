package handler

import (
	"errors"
	"net/http"

	"siteadmin/internal/metrics"
	"siteadmin/internal/middleware"
	"siteadmin/internal/models"
	"siteadmin/internal/repository"
	"siteadmin/internal/service"
	"siteadmin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCloser ends the live change-feed connections of an admin.
type SessionCloser interface {
	Disconnect(adminID uint) int
}

type AuthHandler struct {
	svc       *service.AuthService
	auditRepo *repository.AuditLogRepository
	metrics   *metrics.Metrics
	sessions  SessionCloser
	log       *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, auditRepo *repository.AuditLogRepository, m *metrics.Metrics, sessions SessionCloser, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, auditRepo: auditRepo, metrics: m, sessions: sessions, log: log}
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string              `json:"token"`
	Admin models.AdminSummary `json:"admin"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.record("register", err)
		respondError(c, h.log, "register", err)
		return
	}
	h.record("register", nil)
	h.auditLog(c, &a.ID, "register")
	respond(c, http.StatusCreated, "Admin registered successfully", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	a, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.record("login", err)
		if errors.Is(err, service.ErrAuth) {
			h.auditLog(c, nil, "login_failed")
		}
		respondError(c, h.log, "login", err)
		return
	}
	h.record("login", nil)
	h.auditLog(c, &a.ID, "login")
	respond(c, http.StatusOK, "Login successful", LoginResponse{Token: token, Admin: a.Summary()})
}

// Me returns the admin behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	a, err := h.svc.Me(c.Request.Context(), middleware.GetAdminID(c))
	if err != nil {
		respondError(c, h.log, "me", err)
		return
	}
	respond(c, http.StatusOK, "Admin fetched successfully", a.Summary())
}

// Activity lists the caller's own audit trail, newest first.
func (h *AuthHandler) Activity(c *gin.Context) {
	list, err := h.auditRepo.ListByAdmin(c.Request.Context(), middleware.GetAdminID(c))
	if err != nil {
		respondError(c, h.log, "audit list", err)
		return
	}
	respondList(c, "Activity fetched successfully", list, len(list))
}

func (h *AuthHandler) record(action string, err error) {
	if h.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	h.metrics.RecordAuth(action, outcome)
}

// auditLog is best-effort; a failed write never fails the request.
func (h *AuthHandler) auditLog(c *gin.Context, adminID *uint, action string) {
	if h.auditRepo == nil {
		return
	}
	err := h.auditRepo.Create(c.Request.Context(), &models.AuditLog{
		AdminID:   adminID,
		Action:    action,
		Resource:  "auth",
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		logger.FromContext(c.Request.Context(), h.log).Warn("audit log write failed",
			zap.String("action", action), zap.Error(err))
	}
}

type BlockRequest struct {
	Blocked *bool `json:"blocked"`
}

// SetBlocked blocks or unblocks another admin account.
func (h *AuthHandler) SetBlocked(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req BlockRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Blocked == nil {
		fail(c, http.StatusBadRequest, "blocked is required")
		return
	}
	actor := middleware.GetAdminID(c)
	a, err := h.svc.SetBlocked(c.Request.Context(), actor, id, *req.Blocked)
	if err != nil {
		respondError(c, h.log, "admin block", err)
		return
	}
	action := "unblock_admin"
	if *req.Blocked {
		action = "block_admin"
		if h.sessions != nil {
			h.sessions.Disconnect(a.ID)
		}
	}
	h.auditLog(c, &actor, action)
	respond(c, http.StatusOK, "Admin updated successfully", a)
}

// BlockingDisabled answers the block route while signup is open to anyone.
// A self-registered account must not be able to lock out existing admins.
func (h *AuthHandler) BlockingDisabled(c *gin.Context) {
	fail(c, http.StatusForbidden, "Admin blocking requires REQUIRE_ADMIN_TOKEN")
}
