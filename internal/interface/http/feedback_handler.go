package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/application"
	"github.com/oksasatya/yokoo-bicycle/pkg/response"
	"github.com/oksasatya/yokoo-bicycle/pkg/validation"
)

type FeedbackHandler struct {
	Svc    *application.FeedbackService
	Logger *logrus.Logger
}

func NewFeedbackHandler(svc *application.FeedbackService, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	Rating    int    `json:"rating" binding:"required,rating"`
	Comment   string `json:"comment"`
}

type createContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *FeedbackHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	r, err := h.Svc.AddReview(c.Request.Context(), application.ReviewInput{
		UserEmail: req.UserEmail,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create review failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusCreated, r, "review created", nil)
}

func (h *FeedbackHandler) AllReviews(c *gin.Context) {
	list, err := h.Svc.AllReviews(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list reviews failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "reviews", nil)
}

func (h *FeedbackHandler) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	ct, err := h.Svc.AddContact(c.Request.Context(), application.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create contact failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusCreated, ct, "contact saved", nil)
}
