package utils

import (
	"testing"

	"github.com/fqwhipz/fqwhipz-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingFixture() []models.Booking {
	return []models.Booking{
		{ID: "b-1", Status: models.BookingStatusConfirmed},
		{ID: "b-2", Status: models.BookingStatusCompleted},
		{ID: "b-3", Status: models.BookingStatusPending},
		{ID: "b-4", Status: models.BookingStatusActive},
		{ID: "b-5", Status: models.BookingStatusCancelled},
		{ID: "b-6", Status: models.BookingStatusPending},
	}
}

func bookingIDs(bookings []models.Booking) []string {
	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	return ids
}

func TestPartitionCustomerBookings(t *testing.T) {
	bookings := bookingFixture()
	buckets := PartitionCustomerBookings(bookings)

	t.Run("upcoming covers pending, confirmed and active in input order", func(t *testing.T) {
		assert.Equal(t, []string{"b-1", "b-3", "b-4", "b-6"}, bookingIDs(buckets.Upcoming))
	})

	t.Run("past covers completed and cancelled in input order", func(t *testing.T) {
		assert.Equal(t, []string{"b-2", "b-5"}, bookingIDs(buckets.Past))
	})

	t.Run("input is untouched", func(t *testing.T) {
		assert.Equal(t, []string{"b-1", "b-2", "b-3", "b-4", "b-5", "b-6"}, bookingIDs(bookings))
	})

	t.Run("empty input yields empty, non-nil buckets", func(t *testing.T) {
		empty := PartitionCustomerBookings(nil)
		assert.NotNil(t, empty.Upcoming)
		assert.NotNil(t, empty.Past)
		assert.Empty(t, empty.Upcoming)
		assert.Empty(t, empty.Past)
	})
}

func TestPartitionProviderBookings(t *testing.T) {
	bookings := bookingFixture()
	buckets := PartitionProviderBookings(bookings)

	t.Run("three-way split in input order", func(t *testing.T) {
		assert.Equal(t, []string{"b-3", "b-6"}, bookingIDs(buckets.Pending))
		assert.Equal(t, []string{"b-1"}, bookingIDs(buckets.Confirmed))
		assert.Equal(t, []string{"b-2"}, bookingIDs(buckets.Completed))
	})

	t.Run("active and cancelled fall in no provider bucket", func(t *testing.T) {
		all := append(append(bookingIDs(buckets.Pending), bookingIDs(buckets.Confirmed)...), bookingIDs(buckets.Completed)...)
		assert.NotContains(t, all, "b-4")
		assert.NotContains(t, all, "b-5")
	})
}

func TestPartition_UnrecognizedStatusOmitted(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b-1", Status: models.BookingStatus("refunded")},
		{ID: "b-2", Status: models.BookingStatusPending},
	}

	customer := PartitionCustomerBookings(bookings)
	require.Len(t, customer.Upcoming, 1)
	assert.Empty(t, customer.Past)

	provider := PartitionProviderBookings(bookings)
	require.Len(t, provider.Pending, 1)
	assert.Empty(t, provider.Confirmed)
	assert.Empty(t, provider.Completed)
}

func TestPartition_ActiveBookingRoleAsymmetry(t *testing.T) {
	// An active trip is visible to the renter but absent from every host
	// bucket; the two role taxonomies are deliberately asymmetric.
	bookings := []models.Booking{{ID: "b-1", Status: models.BookingStatusActive}}

	customer := PartitionCustomerBookings(bookings)
	assert.Equal(t, []string{"b-1"}, bookingIDs(customer.Upcoming))

	provider := PartitionProviderBookings(bookings)
	assert.Empty(t, provider.Pending)
	assert.Empty(t, provider.Confirmed)
	assert.Empty(t, provider.Completed)
}
