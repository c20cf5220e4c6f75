package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error envelope is {error:true, message} on every explicit failure path;
// success responses are the raw operation result.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": true, "message": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": err.Error()})
}
