package utils

import (
	"math"

	"github.com/fqwhipz/fqwhipz-backend/internal/models"
)

// Quote contains the calculated trip price and breakdown. All amounts are
// whole dollars.
type Quote struct {
	TripDays        int    `json:"tripDays"`
	DailyRate       int    `json:"dailyRate"`
	DiscountPercent int    `json:"discountPercent"`
	DiscountLabel   string `json:"discountLabel,omitempty"`
	Subtotal        int    `json:"subtotal"`
	ServiceFee      int    `json:"serviceFee"`
	Insurance       int    `json:"insurance"`
	Total           int    `json:"total"`
	OriginalTotal   int    `json:"originalTotal"`
	Savings         int    `json:"savings"`
}

// FeeConfig holds the flat per-trip fees. They do not scale with trip
// length.
type FeeConfig struct {
	ServiceFee int `json:"serviceFee"`
	Insurance  int `json:"insurance"`
}

// DefaultFees are the platform's standard flat fees in USD.
var DefaultFees = FeeConfig{
	ServiceFee: 15,
	Insurance:  25,
}

// Trip-length thresholds for the discounted tiers.
const (
	DiscountTierDays = 3
	WeeklyTierDays   = 7
)

// CalculateQuote prices a trip of tripDays days (minimum 1) against a
// vehicle's three-tier rate. The weekly rate wins at 7+ days, the discounted
// rate at 3+ days, otherwise the base rate applies.
func CalculateQuote(vehicle models.Vehicle, tripDays int, fees FeeConfig) Quote {
	if tripDays < 1 {
		tripDays = 1
	}

	dailyRate := vehicle.PricePerDay
	discountLabel := ""

	switch {
	case tripDays >= WeeklyTierDays:
		dailyRate = vehicle.WeeklyPrice
		discountLabel = "Weekly discount applied!"
	case tripDays >= DiscountTierDays:
		dailyRate = vehicle.DiscountedPrice
		discountLabel = "3+ day discount applied!"
	}

	discountPercent := 0
	if dailyRate != vehicle.PricePerDay && vehicle.PricePerDay > 0 {
		discountPercent = int(math.Round(float64(vehicle.PricePerDay-dailyRate) / float64(vehicle.PricePerDay) * 100))
	}

	subtotal := dailyRate * tripDays
	total := subtotal + fees.ServiceFee + fees.Insurance
	originalTotal := vehicle.PricePerDay*tripDays + fees.ServiceFee + fees.Insurance

	return Quote{
		TripDays:        tripDays,
		DailyRate:       dailyRate,
		DiscountPercent: discountPercent,
		DiscountLabel:   discountLabel,
		Subtotal:        subtotal,
		ServiceFee:      fees.ServiceFee,
		Insurance:       fees.Insurance,
		Total:           total,
		OriginalTotal:   originalTotal,
		Savings:         originalTotal - total,
	}
}
