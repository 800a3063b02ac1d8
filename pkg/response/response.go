package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body shapes here are part of the public API contract and are consumed by
// existing clients. Validation, conflict, and credential failures use
// {"message": ...}; the authenticated-lookup miss and generic failures use
// {"errorMessage": ...}.

func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

// UserNotFound is intentionally 401 rather than 404: the lookup runs under
// an authenticated identity and must not leak account existence.
func UserNotFound(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "User not found"})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal server error"})
}
