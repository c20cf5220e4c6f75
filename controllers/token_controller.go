package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/utils"
)

type TokenController struct {
	secret string
	ttl    time.Duration
}

func NewTokenController(secret string, ttl time.Duration) *TokenController {
	return &TokenController{secret: secret, ttl: ttl}
}

// POST /jwt
// Signs whatever identity claims the caller supplies. No credential check
// happens here; the frontend authenticates the user and asks for a token.
func (t *TokenController) Issue(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := utils.GenerateToken(payload, t.secret, t.ttl)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"jToken": token})
}
