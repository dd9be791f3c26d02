package handlers

import (
	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// GetProviderEarnings returns the host's payout summary: completed trips
// are earned, confirmed trips are pending, each at the host share of the
// booking total.
func GetProviderEarnings(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeProvider) {
			c.JSON(403, gin.H{"error": "Only providers can view earnings"})
			return
		}

		hostID := c.GetString("userId")
		buckets := utils.PartitionProviderBookings(store.ProviderBookings(hostID))
		summary := utils.CalculateEarnings(buckets)

		c.JSON(200, gin.H{
			"hostShare":       utils.HostShare,
			"totalEarnings":   summary.TotalEarnings,
			"pendingEarnings": summary.PendingEarnings,
			"transactions":    summary.Transactions,
		})
	}
}

// GetProviderStats returns the dashboard counters: bucket sizes, fleet
// size and the earnings headline.
func GetProviderStats(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeProvider) {
			c.JSON(403, gin.H{"error": "Only providers can view dashboard stats"})
			return
		}

		hostID := c.GetString("userId")
		buckets := utils.PartitionProviderBookings(store.ProviderBookings(hostID))
		summary := utils.CalculateEarnings(buckets)

		c.JSON(200, gin.H{
			"pendingBookings":   len(buckets.Pending),
			"confirmedBookings": len(buckets.Confirmed),
			"completedBookings": len(buckets.Completed),
			"vehicleCount":      len(store.HostVehicles(hostID, "")),
			"totalEarnings":     summary.TotalEarnings,
			"pendingEarnings":   summary.PendingEarnings,
		})
	}
}
