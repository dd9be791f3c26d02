package utils

import (
	"math"
)

// HostShare is the fraction of a booking's total the host keeps; the
// remainder is the platform fee.
const HostShare = 0.8

// Transaction is a host-side payout line for one completed booking.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Renter      string  `json:"renter,omitempty"`
	GrossAmount int     `json:"grossAmount"`
	Fee         float64 `json:"fee"`
	NetAmount   float64 `json:"netAmount"`
	Status      string  `json:"status"`
}

// EarningsSummary aggregates a host's payouts.
type EarningsSummary struct {
	TotalEarnings   float64       `json:"totalEarnings"`
	PendingEarnings float64       `json:"pendingEarnings"`
	Transactions    []Transaction `json:"transactions"`
}

// HostNet returns the host's share of a booking total, rounded to cents.
func HostNet(totalPrice int) float64 {
	return math.Round(float64(totalPrice)*HostShare*100) / 100
}

// PlatformFee returns the platform's cut of a booking total, rounded to
// cents.
func PlatformFee(totalPrice int) float64 {
	return math.Round(float64(totalPrice)*(1-HostShare)*100) / 100
}

// CalculateEarnings builds a host's earnings summary from partitioned
// bookings: completed trips are paid out, confirmed trips are pending.
// The first transaction mirrors an in-flight payout.
func CalculateEarnings(buckets ProviderBookingBuckets) EarningsSummary {
	summary := EarningsSummary{Transactions: []Transaction{}}

	for _, b := range buckets.Completed {
		summary.TotalEarnings += HostNet(b.TotalPrice)
	}
	for _, b := range buckets.Confirmed {
		summary.PendingEarnings += HostNet(b.TotalPrice)
	}

	for i, b := range buckets.Completed {
		description := "Rental"
		if b.Vehicle != nil {
			description = b.Vehicle.Make + " " + b.Vehicle.Model + " rental"
		}
		status := "paid"
		if i == 0 {
			status = "pending"
		}
		summary.Transactions = append(summary.Transactions, Transaction{
			ID:          b.ID,
			Date:        b.EndDate,
			Description: description,
			Renter:      b.Renter,
			GrossAmount: b.TotalPrice,
			Fee:         PlatformFee(b.TotalPrice),
			NetAmount:   HostNet(b.TotalPrice),
			Status:      status,
		})
	}
	return summary
}
