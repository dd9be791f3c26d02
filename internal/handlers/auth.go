package handlers

import (
	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/fqwhipz/fqwhipz-backend/internal/services"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required,oneof=customer provider"`
}

// Login checks the credentials against the demo accounts. A match issues a
// JWT and writes the session record wholesale; any mismatch is a plain 401
// with no lockout or retry counting.
func Login(store *catalog.Store, sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		user, err := store.UserByEmail(input.Email)
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if user.Type != models.UserType(input.UserType) {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		if err := sessions.SaveSession(c.Request.Context(), user); err != nil {
			log.WithError(err).Warn("failed to persist session record")
		}

		c.JSON(200, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// GetSession reads the persisted session record back. An absent or
// discarded record means logged out, not an error.
func GetSession(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.LoadSession(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to read session"})
			return
		}

		if user == nil {
			c.JSON(200, gin.H{"authenticated": false})
			return
		}

		c.JSON(200, gin.H{
			"authenticated": true,
			"user":          user,
		})
	}
}

// Logout clears the session record.
func Logout(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.ClearSession(c.Request.Context()); err != nil {
			c.JSON(500, gin.H{"error": "Failed to clear session"})
			return
		}
		c.JSON(200, gin.H{"message": "Logged out"})
	}
}
