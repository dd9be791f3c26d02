package handlers

import (
	"time"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GetFAQs returns the marketing FAQ entries.
func GetFAQs(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"faqs": store.FAQs()})
	}
}

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact accepts a contact-form message. Nothing is delivered
// anywhere; the message is stored in memory and logged, matching the demo's
// fire-and-forget submit.
func SubmitContact(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		message := models.ContactMessage{
			ID:         "msg-" + uuid.NewString(),
			Name:       input.Name,
			Email:      input.Email,
			Subject:    input.Subject,
			Message:    input.Message,
			ReceivedAt: time.Now().Format(time.RFC3339),
		}
		store.AddContactMessage(message)

		log.WithFields(log.Fields{
			"messageId": message.ID,
			"email":     message.Email,
		}).Info("contact message received")

		c.JSON(202, gin.H{
			"message": "Thanks for reaching out! We'll get back to you soon.",
			"id":      message.ID,
		})
	}
}
