package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthModule serves the liveness text at the root path.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Yokoo Bicycle")
	})
}
