package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "identity-service/internal/application"
	"identity-service/internal/domain/valueobject"
	"identity-service/pkg/response"
)

// AuthHandler exposes the public registration and sign-in endpoints.
type AuthHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *userapp.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp POST /auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req userapp.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, out)
}

// SignIn POST /auth/sign-in
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, out)
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	var verr *valueobject.ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(c, verr.Message)
	case errors.Is(err, userapp.ErrUserAlreadyExists):
		response.Conflict(c, "User already exists")
	case errors.Is(err, userapp.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
		}
		response.ServerError(c)
	}
}
