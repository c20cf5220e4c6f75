package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
	"github.com/gaurabwebdev/bistro-boss-server/utils"
)

// VerifyJWT validates the bearer token and puts the decoded claims into the
// request context. Missing header is 401; a present but bad token is 403.
func VerifyJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			resp.Unauthorized(c, "unauthorized access")
			c.Abort()
			return
		}

		// header structure --- "Bearer <token>"
		parts := strings.Fields(h)
		if len(parts) < 2 {
			resp.Forbidden(c, "unauthorized access")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1], secret)
		if err != nil {
			resp.Forbidden(c, "unauthorized access")
			c.Abort()
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Set("claims", claims)
		c.Next()
	}
}

// VerifyAdmin requires VerifyJWT to have run. The stored role is read fresh
// from the database on every request.
func VerifyAdmin(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := utils.CurrentEmail(c)
		user, err := users.FindByEmail(email)
		if err != nil || user.Role != "admin" {
			resp.Forbidden(c, "forbidden access")
			c.Abort()
			return
		}
		c.Next()
	}
}
