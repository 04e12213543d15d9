package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yokoo-bicycle/internal/container"
	handlers "github.com/oksasatya/yokoo-bicycle/internal/interface/http"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
)

// FeedbackModule wires review and contact routes.
type FeedbackModule struct {
	Handler *handlers.FeedbackHandler
}

func NewFeedbackModule(h *handlers.FeedbackHandler) *FeedbackModule {
	return &FeedbackModule{Handler: h}
}

func (m *FeedbackModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/review", writeLimiter, m.Handler.CreateReview)
	rg.GET("/allReviews", m.Handler.AllReviews)
	rg.POST("/contact", writeLimiter, m.Handler.CreateContact)
}
