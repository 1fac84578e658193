package middleware

import (
	"os"
	"strings"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// abortWith turns an auth failure into the same code-to-status mapping the
// controllers use, so 401/403 semantics live in one place.
func abortWith(c *gin.Context, err *apperrors.Error) {
	c.JSON(apperrors.ToHTTPStatus(err.Code), gin.H{"error": err.Message})
	c.Abort()
}

func parseClaims(c *gin.Context) *utils.UserClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil
	}

	return &utils.UserClaims{
		UserID: uint(userID),
		Role:   role,
	}
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// decoded claims on the context for handlers and services.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims := parseClaims(c)
		if userClaims == nil {
			abortWith(c, apperrors.Unauthenticated("Invalid or missing token"))
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but lets
// anonymous requests through. Used on public read endpoints where staff get a
// wider view of the same resource.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userClaims := parseClaims(c); userClaims != nil {
			c.Set(string(utils.UserContextKey), userClaims)
		}
		c.Next()
	}
}

// RequireRoles gates a route group to the listed roles. Fine-grained checks
// still run in the policy layer; this is the transport-level gate.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			abortWith(c, apperrors.Unauthenticated("Unauthorized. User not authenticated."))
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortWith(c, apperrors.Forbidden("Forbidden. You do not have permission to access this resource."))
	}
}
