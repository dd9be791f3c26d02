package handlers

import (
	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated demo account's profile record.
func GetProfile(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.UserByID(c.GetString("userId"))
		if err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(200, user)
	}
}
