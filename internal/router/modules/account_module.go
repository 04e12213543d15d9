package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/yokoo-bicycle/internal/container"
	handlers "github.com/oksasatya/yokoo-bicycle/internal/interface/http"
	"github.com/oksasatya/yokoo-bicycle/internal/interface/middleware"
	"github.com/oksasatya/yokoo-bicycle/pkg/helpers"
)

// AccountModule wires the account routes. Only /users/makeAdmin is gated: the
// Identity middleware verifies any presented bearer credential and the
// handler enforces the admin check.
type AccountModule struct {
	Handler  *handlers.AccountHandler
	Verifier *helpers.IDTokenVerifier
}

func NewAccountModule(h *handlers.AccountHandler, v *helpers.IDTokenVerifier) *AccountModule {
	return &AccountModule{Handler: h, Verifier: v}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	elevateLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByPrincipal(), nil)

	rg.POST("/users", writeLimiter, m.Handler.Create)
	rg.PUT("/users", writeLimiter, m.Handler.Upsert)
	rg.GET("/users/:email", m.Handler.AdminStatus)

	rg.PUT("/users/makeAdmin", middleware.Identity(m.Verifier), elevateLimiter, m.Handler.MakeAdmin)
}
