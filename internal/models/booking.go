package models

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records a trip for a vehicle. Dates are calendar dates in
// YYYY-MM-DD form with EndDate after StartDate. TotalPrice is whole dollars.
type Booking struct {
	ID         string        `json:"id"`
	VehicleID  string        `json:"vehicleId"`
	Vehicle    *Vehicle      `json:"vehicle,omitempty"`
	StartDate  string        `json:"startDate"`
	EndDate    string        `json:"endDate"`
	TotalPrice int           `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  string        `json:"createdAt"`
	Renter     string        `json:"renter,omitempty"`
}
