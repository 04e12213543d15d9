package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yokoo-bicycle/internal/container"
	handlers "github.com/oksasatya/yokoo-bicycle/internal/interface/http"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
)

// CatalogModule wires the bicycle routes.
// Public reads: GET /bicycles, /allBicycles, /bicycles/:id
// Writes (rate limited per IP): POST /bicycle, DELETE /bicycles/:id,
// POST /bicycles/:id/image
type CatalogModule struct {
	Handler *handlers.BicycleHandler
}

func NewCatalogModule(h *handlers.BicycleHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/bicycles", m.Handler.Featured)
	rg.GET("/allBicycles", m.Handler.All)
	rg.GET("/bicycles/:id", m.Handler.GetByID)

	rg.POST("/bicycle", writeLimiter, m.Handler.Create)
	rg.DELETE("/bicycles/:id", writeLimiter, m.Handler.Delete)
	rg.POST("/bicycles/:id/image", writeLimiter, m.Handler.UploadImage)
}
