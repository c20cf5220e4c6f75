package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id path segment; 0,false when it is not numeric.
func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
