package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"identity-service/internal/container"
	handlers "identity-service/internal/interface/http"
	"identity-service/internal/interface/middleware"
	"identity-service/pkg/helpers"
)

// UserModule wires the bearer-protected profile route.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()))
	{
		auth.GET("/user", m.Handler.GetUser)
	}
}
