package handlers

import (
	"time"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// GetCustomerBookings returns the renter's trips split into upcoming and
// past buckets.
func GetCustomerBookings(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeCustomer) {
			c.JSON(403, gin.H{"error": "Only customers can view their trips"})
			return
		}

		buckets := utils.PartitionCustomerBookings(store.CustomerBookings())
		c.JSON(200, buckets)
	}
}

// GetProviderBookings returns the host's booking requests split into
// pending, confirmed and completed buckets.
func GetProviderBookings(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeProvider) {
			c.JSON(403, gin.H{"error": "Only providers can view booking requests"})
			return
		}

		hostID := c.GetString("userId")
		buckets := utils.PartitionProviderBookings(store.ProviderBookings(hostID))
		c.JSON(200, buckets)
	}
}

type CreateBookingInput struct {
	VehicleID string `json:"vehicleId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// CreateBooking books a vehicle for the authenticated customer. The total
// comes from the tiered quote; instant-book vehicles confirm immediately,
// everything else waits for the host. Bookings live in memory only.
func CreateBooking(store *catalog.Store, fees utils.FeeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeCustomer) {
			c.JSON(403, gin.H{"error": "Only customers can book vehicles"})
			return
		}

		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		start, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		end, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			c.JSON(400, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return
		}

		tripDays := int(end.Sub(start).Hours() / 24)
		if tripDays < 1 {
			c.JSON(400, gin.H{"error": "endDate must be after startDate"})
			return
		}

		vehicle, err := store.GetVehicle(input.VehicleID)
		if err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		quote := utils.CalculateQuote(vehicle, tripDays, fees)

		status := models.BookingStatusPending
		if vehicle.InstantBook {
			status = models.BookingStatusConfirmed
		}

		renterName := ""
		if user, err := store.UserByID(c.GetString("userId")); err == nil {
			renterName = user.Name
		}

		booking := models.Booking{
			ID:         "b-" + uuid.NewString(),
			VehicleID:  vehicle.ID,
			Vehicle:    &vehicle,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			TotalPrice: quote.Total,
			Status:     status,
			CreatedAt:  time.Now().Format(dateLayout),
		}
		store.AddBooking(booking, renterName)

		c.JSON(201, gin.H{
			"booking": booking,
			"quote":   quote,
		})
	}
}

// AcceptBooking is an inert demo hook: the request is validated and logged
// but no status transition happens.
func AcceptBooking(store *catalog.Store) gin.HandlerFunc {
	return bookingAction(store, "accept")
}

// DeclineBooking is an inert demo hook, same as AcceptBooking.
func DeclineBooking(store *catalog.Store) gin.HandlerFunc {
	return bookingAction(store, "decline")
}

func bookingAction(store *catalog.Store, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeProvider) {
			c.JSON(403, gin.H{"error": "Only providers can manage booking requests"})
			return
		}

		booking, err := store.GetProviderBooking(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		log.WithFields(log.Fields{
			"bookingId": booking.ID,
			"action":    action,
			"hostId":    c.GetString("userId"),
		}).Info("booking action received (demo: no state change)")

		c.JSON(200, gin.H{
			"message": "Action recorded",
			"booking": booking,
		})
	}
}
