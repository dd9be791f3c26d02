package catalog

import (
	"sort"
	"strings"

	"github.com/fqwhipz/fqwhipz-backend/internal/models"
)

type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
)

// Criteria is transient search state. A zero Location (or "all") means no
// location filter; the default 0-100 price range passes every listing.
type Criteria struct {
	Location string
	MinPrice int
	MaxPrice int
	Query    string
	Sort     SortKey
}

// DefaultCriteria matches the search page's initial state: all locations,
// full price range, no query, recommended order.
func DefaultCriteria() Criteria {
	return Criteria{
		MinPrice: 0,
		MaxPrice: 100,
		Sort:     SortRecommended,
	}
}

// FilterAndSort applies the criteria to a copy of the input and returns the
// ordered matches. Filters compose with AND; sorts are stable so tied
// entries keep their catalog order. The result is never nil, so an empty
// match set stays distinguishable from an unqueried state.
func FilterAndSort(vehicles []models.Vehicle, c Criteria) []models.Vehicle {
	filtered := make([]models.Vehicle, 0, len(vehicles))

	query := strings.ToLower(c.Query)
	for _, v := range vehicles {
		if c.Location != "" && c.Location != "all" && v.Location != c.Location {
			continue
		}
		if v.PricePerDay < c.MinPrice || v.PricePerDay > c.MaxPrice {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Make), query) &&
			!strings.Contains(strings.ToLower(v.Model), query) &&
			!strings.Contains(strings.ToLower(v.Description), query) {
			continue
		}
		filtered = append(filtered, v)
	}

	switch c.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDay < filtered[j].PricePerDay
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerDay > filtered[j].PricePerDay
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	default:
		// Recommended: instant-book listings first, then by rating.
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].InstantBook != filtered[j].InstantBook {
				return filtered[i].InstantBook
			}
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

// SearchVehicles runs FilterAndSort over the seeded fleet.
func (s *Store) SearchVehicles(c Criteria) []models.Vehicle {
	return FilterAndSort(s.Vehicles(), c)
}
