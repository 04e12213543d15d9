package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yokoo-bicycle/internal/container"
	handlers "github.com/oksasatya/yokoo-bicycle/internal/interface/http"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
)

// BookingModule wires the booking routes.
type BookingModule struct {
	Handler *handlers.BookingHandler
}

func NewBookingModule(h *handlers.BookingHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/allBookings", m.Handler.All)
	rg.GET("/booking/:email", m.Handler.ByEmail)

	rg.POST("/booking", writeLimiter, m.Handler.Create)
	rg.DELETE("/booking/:id", writeLimiter, m.Handler.Delete)
	rg.PUT("/bookings/:id", writeLimiter, m.Handler.UpdateStatus)
}
