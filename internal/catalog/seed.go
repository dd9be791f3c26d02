package catalog

import (
	"github.com/fqwhipz/fqwhipz-backend/internal/models"
)

const defaultDemoPassword = "demo123"

// Demo account emails. The matching password is seeded at startup.
const (
	DemoCustomerEmail = "demo.customer@fqwhipz.com"
	DemoProviderEmail = "demo.provider@fqwhipz.com"
)

func seedHosts() []models.Host {
	return []models.Host{
		{
			ID:           "host-1",
			Name:         "Marcus Johnson",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus",
			Rating:       4.9,
			ResponseTime: "within an hour",
			ResponseRate: 98,
			Verified:     true,
			JoinedYear:   2022,
			Trips:        156,
		},
		{
			ID:           "host-2",
			Name:         "Sarah Mitchell",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			Rating:       4.8,
			ResponseTime: "within an hour",
			ResponseRate: 95,
			Verified:     true,
			JoinedYear:   2021,
			Trips:        234,
		},
		{
			ID:           "host-3",
			Name:         "David Chen",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=David",
			Rating:       5.0,
			ResponseTime: "within minutes",
			ResponseRate: 100,
			Verified:     true,
			JoinedYear:   2023,
			Trips:        89,
		},
		{
			ID:           "host-4",
			Name:         "Emily Rodriguez",
			Avatar:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
			Rating:       4.7,
			ResponseTime: "within a few hours",
			ResponseRate: 92,
			Verified:     true,
			JoinedYear:   2022,
			Trips:        178,
		},
	}
}

func seedVehicles(hosts []models.Host) []models.Vehicle {
	return []models.Vehicle{
		{
			ID:              "v-1",
			Make:            "Ford",
			Model:           "Fusion",
			Year:            2019,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     45,
			DiscountedPrice: 38,
			WeeklyPrice:     32,
			Images: []string{
				"https://images.unsplash.com/photo-1494976388531-d1058494cdd8?w=800",
				"https://images.unsplash.com/photo-1542362567-b07e54358753?w=800",
			},
			Features:        []string{"Bluetooth", "Backup Camera", "Apple CarPlay", "Cruise Control", "Keyless Entry"},
			Location:        "Chicago, IL",
			Host:            hosts[0],
			Rating:          4.9,
			Reviews:         47,
			Available:       true,
			InstantBook:     true,
			Description:     "Reliable and fuel-efficient Ford Fusion perfect for daily commutes or weekend getaways. Smooth ride with great gas mileage and all the modern conveniences you need.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-2",
			Make:            "Nissan",
			Model:           "Altima",
			Year:            2020,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     48,
			DiscountedPrice: 40,
			WeeklyPrice:     35,
			Images: []string{
				"https://images.unsplash.com/photo-1580273916550-e323be2ae537?w=800",
				"https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?w=800",
			},
			Features:        []string{"AWD Available", "ProPILOT Assist", "Apple CarPlay", "Android Auto", "Heated Seats"},
			Location:        "Milwaukee, WI",
			Host:            hosts[1],
			Rating:          4.8,
			Reviews:         32,
			Available:       true,
			InstantBook:     true,
			Description:     "Stylish Nissan Altima with advanced safety features. ProPILOT Assist makes highway driving a breeze. Great for business trips or family outings.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-3",
			Make:            "Chrysler",
			Model:           "200",
			Year:            2017,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     38,
			DiscountedPrice: 32,
			WeeklyPrice:     28,
			Images: []string{
				"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800",
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?w=800",
			},
			Features:        []string{"Leather Interior", "Touchscreen Display", "Bluetooth", "Backup Camera", "USB Ports"},
			Location:        "Detroit, MI",
			Host:            hosts[2],
			Rating:          4.7,
			Reviews:         28,
			Available:       true,
			InstantBook:     false,
			Description:     "Comfortable Chrysler 200 with a premium leather interior at an affordable price. Perfect for those who want style without breaking the bank.",
			MileageIncluded: 150,
			FuelPolicy:      models.FuelPolicySameToSame,
		},
		{
			ID:              "v-4",
			Make:            "Nissan",
			Model:           "Versa",
			Year:            2021,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     35,
			DiscountedPrice: 29,
			WeeklyPrice:     25,
			Images: []string{
				"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800",
				"https://images.unsplash.com/photo-1550355291-bbee04a92027?w=800",
			},
			Features:        []string{"Excellent MPG", "Apple CarPlay", "Android Auto", "Automatic Emergency Braking", "Bluetooth"},
			Location:        "Indianapolis, IN",
			Host:            hosts[3],
			Rating:          4.8,
			Reviews:         56,
			Available:       true,
			InstantBook:     true,
			Description:     "Budget-friendly Nissan Versa that doesn't compromise on features. Best-in-class fuel economy makes this perfect for road trips across the Midwest.",
			MileageIncluded: 250,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-5",
			Make:            "Honda",
			Model:           "Accord",
			Year:            2021,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     55,
			DiscountedPrice: 46,
			WeeklyPrice:     40,
			Images: []string{
				"https://images.unsplash.com/photo-1619682817481-e994891cd1f5?w=800",
				"https://images.unsplash.com/photo-1606611013016-969c19ba27bb?w=800",
			},
			Features:        []string{"Honda Sensing", "Leather Seats", "Sunroof", "Wireless CarPlay", "Heated Seats"},
			Location:        "Chicago, IL",
			Host:            hosts[0],
			Rating:          4.9,
			Reviews:         63,
			Available:       true,
			InstantBook:     true,
			Description:     "Premium Honda Accord with all the bells and whistles. Honda Sensing safety suite keeps you protected while the leather interior keeps you comfortable.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-6",
			Make:            "Toyota",
			Model:           "Camry",
			Year:            2022,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     52,
			DiscountedPrice: 44,
			WeeklyPrice:     38,
			Images: []string{
				"https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800",
				"https://images.unsplash.com/photo-1590362891991-f776e747a588?w=800",
			},
			Features:        []string{"Toyota Safety Sense", "JBL Audio", "Wireless Charging", "Lane Departure Alert", "Adaptive Cruise"},
			Location:        "Columbus, OH",
			Host:            hosts[1],
			Rating:          4.9,
			Reviews:         89,
			Available:       true,
			InstantBook:     true,
			Description:     "America's best-selling sedan for a reason. Legendary Toyota reliability meets modern technology. Perfect for business trips or family adventures.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-7",
			Make:            "Chevrolet",
			Model:           "Malibu",
			Year:            2020,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     42,
			DiscountedPrice: 35,
			WeeklyPrice:     30,
			Images: []string{
				"https://images.unsplash.com/photo-1537984822441-cff330929b84?w=800",
				"https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?w=800",
			},
			Features:        []string{"Teen Driver Mode", "4G LTE WiFi", "Apple CarPlay", "Android Auto", "Rear Cross Traffic Alert"},
			Location:        "Minneapolis, MN",
			Host:            hosts[2],
			Rating:          4.6,
			Reviews:         41,
			Available:       true,
			InstantBook:     true,
			Description:     "Spacious Chevy Malibu with built-in WiFi hotspot. Great for families or road warriors who need to stay connected on the go.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-8",
			Make:            "Hyundai",
			Model:           "Sonata",
			Year:            2022,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     49,
			DiscountedPrice: 41,
			WeeklyPrice:     36,
			Images: []string{
				"https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?w=800",
				"https://images.unsplash.com/photo-1617469767053-d3b523a0b982?w=800",
			},
			Features:        []string{"Digital Key", "Blind Spot Collision Avoidance", "Smart Cruise", "Ventilated Seats", "Bose Audio"},
			Location:        "Madison, WI",
			Host:            hosts[3],
			Rating:          4.8,
			Reviews:         37,
			Available:       true,
			InstantBook:     false,
			Description:     "Award-winning Hyundai Sonata with stunning design and cutting-edge tech. Digital Key lets you unlock and start the car with your phone!",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-9",
			Make:            "Kia",
			Model:           "K5",
			Year:            2023,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     54,
			DiscountedPrice: 45,
			WeeklyPrice:     39,
			Images: []string{
				"https://images.unsplash.com/photo-1616422285623-13ff0162193c?w=800",
				"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800",
			},
			Features:        []string{"Turbocharged", "360 Camera", "Heads-Up Display", "Wireless Phone Charger", "Smart Park Assist"},
			Location:        "Cleveland, OH",
			Host:            hosts[0],
			Rating:          4.9,
			Reviews:         24,
			Available:       true,
			InstantBook:     true,
			Description:     "The sporty Kia K5 turns heads wherever it goes. Turbocharged power meets premium features at an incredible value.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
		{
			ID:              "v-10",
			Make:            "Mazda",
			Model:           "Mazda3",
			Year:            2021,
			Type:            models.VehicleTypeSedan,
			PricePerDay:     46,
			DiscountedPrice: 39,
			WeeklyPrice:     33,
			Images: []string{
				"https://images.unsplash.com/photo-1553440569-bcc63803a83d?w=800",
				"https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800",
			},
			Features:        []string{"i-Activsense Safety", "Bose Audio", "Heads-Up Display", "AWD Available", "Premium Interior"},
			Location:        "Kansas City, MO",
			Host:            hosts[1],
			Rating:          4.7,
			Reviews:         52,
			Available:       true,
			InstantBook:     true,
			Description:     "The driver's choice! Mazda3 delivers an engaging driving experience with a premium interior that rivals luxury brands.",
			MileageIncluded: 200,
			FuelPolicy:      models.FuelPolicyFullToFull,
		},
	}
}

func seedCustomerBookings(vehicles []models.Vehicle) []models.Booking {
	return []models.Booking{
		{
			ID:         "b-1",
			VehicleID:  "v-1",
			Vehicle:    &vehicles[0],
			StartDate:  "2024-12-15",
			EndDate:    "2024-12-18",
			TotalPrice: 267,
			Status:     models.BookingStatusConfirmed,
			CreatedAt:  "2024-12-01",
		},
		{
			ID:         "b-2",
			VehicleID:  "v-3",
			Vehicle:    &vehicles[2],
			StartDate:  "2024-11-20",
			EndDate:    "2024-11-22",
			TotalPrice: 220,
			Status:     models.BookingStatusCompleted,
			CreatedAt:  "2024-11-15",
		},
	}
}

func seedProviderBookings(vehicles []models.Vehicle) []models.Booking {
	return []models.Booking{
		{
			ID:         "pb-1",
			VehicleID:  "v-1",
			Vehicle:    &vehicles[0],
			StartDate:  "2024-12-15",
			EndDate:    "2024-12-18",
			TotalPrice: 267,
			Status:     models.BookingStatusPending,
			CreatedAt:  "2024-12-10",
		},
		{
			ID:         "pb-2",
			VehicleID:  "v-5",
			Vehicle:    &vehicles[4],
			StartDate:  "2024-12-20",
			EndDate:    "2024-12-25",
			TotalPrice: 750,
			Status:     models.BookingStatusConfirmed,
			CreatedAt:  "2024-12-05",
		},
		{
			ID:         "pb-3",
			VehicleID:  "v-1",
			Vehicle:    &vehicles[0],
			StartDate:  "2024-11-28",
			EndDate:    "2024-12-02",
			TotalPrice: 356,
			Status:     models.BookingStatusCompleted,
			CreatedAt:  "2024-11-20",
		},
	}
}

func seedUsers(demoPassword string) ([]models.User, error) {
	users := []models.User{
		{
			ID:         "user-1",
			Email:      DemoCustomerEmail,
			Name:       "Alex Thompson",
			Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
			Type:       models.UserTypeCustomer,
			Verified:   true,
			Phone:      "(312) 555-0123",
			JoinedDate: "2024-06-15",
		},
		{
			ID:         "host-1",
			Email:      DemoProviderEmail,
			Name:       "Marcus Johnson",
			Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus",
			Type:       models.UserTypeProvider,
			Verified:   true,
			Phone:      "(414) 555-0456",
			JoinedDate: "2022-03-10",
		},
	}

	for i := range users {
		if err := users[i].HashPassword(demoPassword); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func seedLocations() []string {
	return []string{
		"Chicago, IL",
		"Detroit, MI",
		"Milwaukee, WI",
		"Minneapolis, MN",
		"Indianapolis, IN",
		"Columbus, OH",
		"Cleveland, OH",
		"Madison, WI",
		"Kansas City, MO",
		"St. Louis, MO",
	}
}

func seedFAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "Why is Fast Quick Whipz only available in the Midwest?",
			Answer:   "We're currently in beta testing, focusing on the Midwest to ensure we deliver the best possible experience. By starting regionally, we can provide personalized support, faster response times, and refine our service before expanding nationally. Our goal is to be the most reliable car-sharing platform, and that starts with getting it right in our home region.",
		},
		{
			Question: "What's included in the rental price?",
			Answer:   "Our prices are 100% transparent with no hidden fees. The listed price includes the daily rental rate, liability insurance, and 24/7 roadside assistance. You'll only pay extra for optional add-ons like premium insurance upgrades or additional drivers.",
		},
		{
			Question: "How does the pickup process work?",
			Answer:   "We offer flexible pickup options! Most hosts offer contactless pickup with lockboxes or smart locks. You'll receive detailed instructions before your trip. Our Quick Pickup Guarantee ensures you're on the road within 15 minutes of your scheduled time.",
		},
		{
			Question: "What if something goes wrong during my rental?",
			Answer:   "We've got you covered 24/7! Our Midwest-based support team is just a call away. We offer roadside assistance, emergency support, and if needed, we'll work with you to find a replacement vehicle. Your safety and satisfaction are our top priorities.",
		},
		{
			Question: "How do I become a host?",
			Answer:   "Becoming a host is simple! Sign up, list your vehicle with photos and details, set your availability and pricing, and start earning. We handle the insurance, payment processing, and provide 24/7 support. Most hosts earn $500-$1,500+ per month per vehicle.",
		},
		{
			Question: "What insurance coverage is included?",
			Answer:   "Every rental includes liability insurance that meets or exceeds state minimums. Hosts' personal insurance is protected through our Host Protection Program. Guests can also purchase additional coverage for comprehensive protection.",
		},
		{
			Question: "Can I modify or cancel my booking?",
			Answer:   "Yes! Free cancellation is available up to 24 hours before your trip. Modifications can be made anytime before your trip starts, subject to vehicle availability. We believe in flexibility because life happens.",
		},
		{
			Question: "How are hosts and guests verified?",
			Answer:   "Safety is paramount. All users undergo identity verification including driver's license validation. Hosts and guests can see ratings and reviews before booking. We also verify vehicle registration and insurance for all listed cars.",
		},
	}
}
