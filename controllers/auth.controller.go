package controllers

import (
	"errors"
	"net/http"

	"afelegance-backend/auth"

	"github.com/gin-gonic/gin"
)

// IssueToken signs the request body as token claims.
func (ctrl *Controller) IssueToken(c *gin.Context) {
	var claims auth.Claims
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctrl.Tokens.Issue(claims)
	if errors.Is(err, auth.ErrReservedClaim) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
