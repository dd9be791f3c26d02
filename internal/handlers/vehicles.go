package handlers

import (
	"strconv"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// SearchVehicles lists the fleet filtered and ordered by the caller's
// criteria. Missing parameters mean "no filter": every location, the full
// $0-$100 range, no query, recommended order.
func SearchVehicles(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalog.DefaultCriteria()

		criteria.Location = c.Query("location")
		criteria.Query = c.Query("q")

		if raw := c.Query("minPrice"); raw != "" {
			minPrice, err := strconv.Atoi(raw)
			if err != nil || minPrice < 0 {
				c.JSON(400, gin.H{"error": "Invalid minPrice"})
				return
			}
			criteria.MinPrice = minPrice
		}
		if raw := c.Query("maxPrice"); raw != "" {
			maxPrice, err := strconv.Atoi(raw)
			if err != nil || maxPrice < 0 {
				c.JSON(400, gin.H{"error": "Invalid maxPrice"})
				return
			}
			criteria.MaxPrice = maxPrice
		}
		if sortBy := c.Query("sort"); sortBy != "" {
			criteria.Sort = catalog.SortKey(sortBy)
		}

		results := store.SearchVehicles(criteria)
		c.JSON(200, gin.H{
			"vehicles": results,
			"count":    len(results),
		})
	}
}

// GetVehicle returns a single listing by id.
func GetVehicle(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicle, err := store.GetVehicle(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(200, vehicle)
	}
}

// GetVehicleQuote prices a trip for a vehicle. The days parameter defaults
// to 3, the booking widget's initial selection.
func GetVehicleQuote(store *catalog.Store, fees utils.FeeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicle, err := store.GetVehicle(c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{"error": "Vehicle not found"})
			return
		}

		days := 3
		if raw := c.Query("days"); raw != "" {
			days, err = strconv.Atoi(raw)
			if err != nil || days < 1 {
				c.JSON(400, gin.H{"error": "days must be a positive integer"})
				return
			}
		}

		c.JSON(200, utils.CalculateQuote(vehicle, days, fees))
	}
}

// GetProviderVehicles lists the authenticated host's own fleet, optionally
// narrowed by a make/model query.
func GetProviderVehicles(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString("userType")
		if userType != string(models.UserTypeProvider) {
			c.JSON(403, gin.H{"error": "Only providers can list their vehicles"})
			return
		}

		hostID := c.GetString("userId")
		vehicles := store.HostVehicles(hostID, c.Query("q"))
		c.JSON(200, gin.H{
			"vehicles": vehicles,
			"count":    len(vehicles),
		})
	}
}

// GetLocations returns the fixed service-area city list.
func GetLocations(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"locations": store.Locations()})
	}
}
