package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "identity-service/internal/application"
	"identity-service/internal/interface/middleware"
	"identity-service/pkg/response"
)

// UserHandler exposes the bearer-protected profile endpoint.
type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetUser GET /user
// The identity comes from the verified token claims set by the auth gate,
// never from client-supplied parameters.
func (h *UserHandler) GetUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Invalid access token"})
		return
	}

	profile, err := h.Svc.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, userapp.ErrUserNotFound) {
			response.UserNotFound(c)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("profile lookup failed")
		}
		response.ServerError(c)
		return
	}
	response.OK(c, profile)
}
