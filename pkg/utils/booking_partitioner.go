package utils

import (
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
)

// CustomerBookingBuckets splits a customer's bookings into upcoming and
// past trips.
type CustomerBookingBuckets struct {
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

// ProviderBookingBuckets splits a host's bookings by request state. The
// taxonomy is deliberately narrower than the customer view: active and
// cancelled bookings fall in no bucket.
type ProviderBookingBuckets struct {
	Pending   []models.Booking `json:"pending"`
	Confirmed []models.Booking `json:"confirmed"`
	Completed []models.Booking `json:"completed"`
}

// PartitionCustomerBookings buckets bookings for the renter view. Upcoming
// covers pending, confirmed and active trips; past covers completed and
// cancelled ones. Input order is preserved and the input is not modified.
func PartitionCustomerBookings(bookings []models.Booking) CustomerBookingBuckets {
	buckets := CustomerBookingBuckets{
		Upcoming: []models.Booking{},
		Past:     []models.Booking{},
	}

	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusActive:
			buckets.Upcoming = append(buckets.Upcoming, b)
		case models.BookingStatusCompleted, models.BookingStatusCancelled:
			buckets.Past = append(buckets.Past, b)
		}
	}
	return buckets
}

// PartitionProviderBookings buckets bookings for the host view. Statuses
// outside pending/confirmed/completed are omitted.
func PartitionProviderBookings(bookings []models.Booking) ProviderBookingBuckets {
	buckets := ProviderBookingBuckets{
		Pending:   []models.Booking{},
		Confirmed: []models.Booking{},
		Completed: []models.Booking{},
	}

	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending:
			buckets.Pending = append(buckets.Pending, b)
		case models.BookingStatusConfirmed:
			buckets.Confirmed = append(buckets.Confirmed, b)
		case models.BookingStatusCompleted:
			buckets.Completed = append(buckets.Completed, b)
		}
	}
	return buckets
}
