package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/application"
	"github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
	"github.com/oksasatya/yokoo-bicycle/pkg/response"
	"github.com/oksasatya/yokoo-bicycle/pkg/validation"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type createBookingRequest struct {
	UserEmail   string  `json:"userEmail" binding:"required,email"`
	UserName    string  `json:"userName"`
	BicycleID   string  `json:"bicycleId" binding:"omitempty,uuid"`
	BicycleName string  `json:"bicycleName" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required,orderstatus"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), application.BookingInput{
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		BicycleID:   req.BicycleID,
		BicycleName: req.BicycleName,
		Price:       req.Price,
		Date:        req.Date,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create booking failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusCreated, b, "booking created", nil)
}

func (h *BookingHandler) All(c *gin.Context) {
	list, err := h.Svc.All(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list bookings failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "bookings", nil)
}

func (h *BookingHandler) ByEmail(c *gin.Context) {
	list, err := h.Svc.ByUserEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Logger.WithError(err).Error("list bookings by email failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "bookings", nil)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Success(c, http.StatusOK, gin.H{"deletedCount": 0}, "booking not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete booking failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deletedCount": 1}, "booking deleted", nil)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.OrderStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Success(c, http.StatusOK, gin.H{"modifiedCount": 0}, "booking not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update order status failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"modifiedCount": 1}, "order status updated", nil)
}
