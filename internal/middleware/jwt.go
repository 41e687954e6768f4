package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"gym_manager/internal/auth"
)

const claimsKey = "claims"

// RequireAuth ensures a valid bearer token is present and stores the decoded
// claims on the context for downstream handlers.
func RequireAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := issuer.Verify(raw)
		if err != nil {
			// The exact failure is logged, the response stays uniform.
			logrus.WithError(err).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the identity stored by RequireAuth, or nil.
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireRoles ensures the authenticated identity holds at least one of the
// required roles. ADMIN passes every check. Must run after RequireAuth.
func RequireRoles(required ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}
		if !claims.RoleSet().Satisfies(required...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
