package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"identity-service/internal/container"
	handlers "identity-service/internal/interface/http"
	"identity-service/internal/interface/middleware"
)

// AuthModule wires the public registration and sign-in routes.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signUpLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	signInLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/sign-up", signUpLimiter, m.Handler.SignUp)
	rg.POST("/auth/sign-in", signInLimiter, m.Handler.SignIn)
}
