package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentEmail returns the email decoded from the bearer token, or "" when
// the auth middleware did not run.
func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get("email"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentClaims(c *gin.Context) jwt.MapClaims {
	if v, ok := c.Get("claims"); ok {
		if m, ok := v.(jwt.MapClaims); ok {
			return m
		}
	}
	return nil
}
