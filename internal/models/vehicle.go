package models

type VehicleType string

const (
	VehicleTypeSedan    VehicleType = "sedan"
	VehicleTypeSUV      VehicleType = "suv"
	VehicleTypeTruck    VehicleType = "truck"
	VehicleTypeLuxury   VehicleType = "luxury"
	VehicleTypeElectric VehicleType = "electric"
)

type FuelPolicy string

const (
	FuelPolicyFullToFull FuelPolicy = "full-to-full"
	FuelPolicySameToSame FuelPolicy = "same-to-same"
)

// Vehicle is a catalog listing. Prices are whole dollars per day;
// DiscountedPrice applies at 3+ day trips, WeeklyPrice at 7+ days.
// Invariant: WeeklyPrice <= DiscountedPrice <= PricePerDay.
type Vehicle struct {
	ID              string      `json:"id"`
	Make            string      `json:"make"`
	Model           string      `json:"model"`
	Year            int         `json:"year"`
	Type            VehicleType `json:"type"`
	PricePerDay     int         `json:"pricePerDay"`
	DiscountedPrice int         `json:"discountedPrice"`
	WeeklyPrice     int         `json:"weeklyPrice"`
	Images          []string    `json:"images"`
	Features        []string    `json:"features"`
	Location        string      `json:"location"`
	Host            Host        `json:"host"`
	Rating          float64     `json:"rating"`
	Reviews         int         `json:"reviews"`
	Available       bool        `json:"available"`
	InstantBook     bool        `json:"instantBook"`
	Description     string      `json:"description"`
	MileageIncluded int         `json:"mileageIncluded"`
	FuelPolicy      FuelPolicy  `json:"fuelPolicy"`
}

// Host is the vehicle-supplying side of a listing.
type Host struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Rating       float64 `json:"rating"`
	ResponseTime string  `json:"responseTime"`
	ResponseRate int     `json:"responseRate"`
	Verified     bool    `json:"verified"`
	JoinedYear   int     `json:"joinedYear"`
	Trips        int     `json:"trips"`
}
