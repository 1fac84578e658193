package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/utils"
)

// respondError maps a service error to its HTTP status. Storage failures stay
// generic 500s; the wrapped cause is for logs, not for clients.
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	message := err.Error()
	if code == apperrors.CodeStorage {
		message = "Server error"
	}
	c.JSON(apperrors.ToHTTPStatus(code), gin.H{"error": message})
}

// optionalActor resolves the caller's identity on routes that accept both
// anonymous and authenticated requests. Without a token the zero Actor is
// returned and the services fall back to the public view.
func optionalActor(c *gin.Context) policy.Actor {
	if user := utils.GetUser(c); user != nil {
		return user.Actor()
	}
	return policy.Actor{}
}
