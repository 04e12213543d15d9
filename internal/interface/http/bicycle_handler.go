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

type BicycleHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewBicycleHandler(svc *application.CatalogService, logger *logrus.Logger) *BicycleHandler {
	return &BicycleHandler{Svc: svc, Logger: logger}
}

type createBicycleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"img" binding:"omitempty,url"`
}

func (h *BicycleHandler) Create(c *gin.Context) {
	var req createBicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Add(c.Request.Context(), application.BicycleInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create bicycle failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusCreated, b, "bicycle created", nil)
}

func (h *BicycleHandler) Featured(c *gin.Context) {
	list, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list featured bicycles failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "bicycles", nil)
}

func (h *BicycleHandler) All(c *gin.Context) {
	list, err := h.Svc.All(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list bicycles failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "bicycles", nil)
}

func (h *BicycleHandler) GetByID(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Absent records are null data, not an error, matching the frontend
		// contract for point reads.
		if errors.Is(err, repository.ErrNotFound) {
			response.Success[any](c, http.StatusOK, nil, "bicycle", nil)
			return
		}
		h.Logger.WithError(err).Error("get bicycle failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, b, "bicycle", nil)
}

func (h *BicycleHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Success(c, http.StatusOK, gin.H{"deletedCount": 0}, "bicycle not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete bicycle failed")
		response.Error[any](c, http.StatusInternalServerError, "store error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deletedCount": 1}, "bicycle deleted", nil)
}

func (h *BicycleHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing image file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "bicycle not found", nil)
			return
		}
		h.Logger.WithError(err).Error("upload bicycle image failed")
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"img": url}, "image uploaded", nil)
}
