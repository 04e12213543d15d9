package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/application"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
	"github.com/oksasatya/yokoo-bicycle/pkg/response"
	"github.com/oksasatya/yokoo-bicycle/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type accountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"displayName"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
}

type makeAdminRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Register(c.Request.Context(), application.AccountInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create account failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusCreated, a, "account created", nil)
}

func (h *AccountHandler) Upsert(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Upsert(c.Request.Context(), application.AccountInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.Logger.WithError(err).Error("upsert account failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, a, "account saved", nil)
}

// AdminStatus answers `{admin: bool}` for the email in the path.
func (h *AccountHandler) AdminStatus(c *gin.Context) {
	admin, err := h.Svc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Logger.WithError(err).Error("admin status lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin}, "admin status", nil)
}

// MakeAdmin is the gated elevation endpoint. The Identity middleware has
// already verified any presented credential; an absent principal or a
// non-admin principal is rejected here with 403 and no mutation.
func (h *AccountHandler) MakeAdmin(c *gin.Context) {
	var req makeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	principal := middleware.PrincipalEmail(c)
	err := h.Svc.Elevate(c.Request.Context(), principal, req.Email)
	if err != nil {
		if errors.Is(err, application.ErrForbidden) {
			response.Error[any](c, http.StatusForbidden, application.ErrForbidden.Error(), nil)
			return
		}
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"principal": principal,
			"target":    req.Email,
		}).Error("elevation failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"email": req.Email, "role": "admin"}, "admin role granted", nil)
}
