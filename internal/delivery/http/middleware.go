package http

import (
	"errors"
	"net/http"
	"strings"

	"coursehub-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware validates the Bearer token and stores the student's id and
// username in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid auth header format"})
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("student_id", claims.StudentID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

func getStudentID(c *gin.Context) (primitive.ObjectID, error) {
	raw, exists := c.Get("student_id")
	if !exists {
		return primitive.NilObjectID, errors.New("student ID not found in token")
	}

	id, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		return primitive.NilObjectID, errors.New("malformed student ID in token")
	}
	return id, nil
}
