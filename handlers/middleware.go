package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rentacar/services"
)

// AdminIDKey is the context key under which the authenticated admin's ID is stored
const AdminIDKey = "admin_id"

// RequireAdmin gates a route group behind a valid admin session token
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		c.Set(AdminIDKey, claims.Subject)
		c.Next()
	}
}
