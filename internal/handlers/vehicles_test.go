package handlers

import (
	"testing"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultIDs(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	raw, ok := body["vehicles"].([]interface{})
	require.True(t, ok)
	ids := make([]string, len(raw))
	for i, entry := range raw {
		v, ok := entry.(map[string]interface{})
		require.True(t, ok)
		ids[i], _ = v["id"].(string)
	}
	return ids
}

func TestSearchVehicles(t *testing.T) {
	r, _, _ := newTestServer(t)

	t.Run("no parameters returns the whole fleet", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles", "", nil)
		requireStatus(t, w, 200)
		body := decodeBody(t, w)
		assert.Equal(t, float64(10), body["count"])
	})

	t.Run("location filter", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles?location=Chicago,%20IL", "", nil)
		requireStatus(t, w, 200)
		assert.ElementsMatch(t, []string{"v-1", "v-5"}, resultIDs(t, decodeBody(t, w)))
	})

	t.Run("price-low sort starts with the cheapest listing", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles?sort=price-low", "", nil)
		requireStatus(t, w, 200)
		ids := resultIDs(t, decodeBody(t, w))
		require.NotEmpty(t, ids)
		assert.Equal(t, "v-4", ids[0]) // Versa, $35/day
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles?q=lamborghini", "", nil)
		requireStatus(t, w, 200)
		body := decodeBody(t, w)
		assert.Equal(t, float64(0), body["count"])
		assert.NotNil(t, body["vehicles"])
	})

	t.Run("invalid price bound", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles?minPrice=abc", "", nil)
		requireStatus(t, w, 400)
	})
}

func TestGetVehicle(t *testing.T) {
	r, _, _ := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-6", "", nil)
		requireStatus(t, w, 200)
		body := decodeBody(t, w)
		assert.Equal(t, "Toyota", body["make"])
		assert.Equal(t, "Camry", body["model"])
	})

	t.Run("unknown id is a 404 view state", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-999", "", nil)
		requireStatus(t, w, 404)
		assert.Equal(t, "Vehicle not found", decodeBody(t, w)["error"])
	})
}

func TestGetVehicleQuote(t *testing.T) {
	r, _, _ := newTestServer(t)

	t.Run("weekly tier", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-1/quote?days=7", "", nil)
		requireStatus(t, w, 200)
		body := decodeBody(t, w)
		assert.Equal(t, float64(32), body["dailyRate"])
		assert.Equal(t, float64(224), body["subtotal"])
		assert.Equal(t, float64(264), body["total"])
		assert.Equal(t, float64(355), body["originalTotal"])
		assert.Equal(t, float64(91), body["savings"])
	})

	t.Run("days defaults to the widget's initial three", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-1/quote", "", nil)
		requireStatus(t, w, 200)
		body := decodeBody(t, w)
		assert.Equal(t, float64(3), body["tripDays"])
		assert.Equal(t, float64(38), body["dailyRate"])
	})

	t.Run("invalid days", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-1/quote?days=0", "", nil)
		requireStatus(t, w, 400)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/vehicles/v-999/quote?days=3", "", nil)
		requireStatus(t, w, 404)
	})
}

func TestGetProviderVehicles(t *testing.T) {
	r, store, _ := newTestServer(t)
	providerToken := tokenFor(t, store, catalog.DemoProviderEmail)
	customerToken := tokenFor(t, store, catalog.DemoCustomerEmail)

	t.Run("host sees only their own fleet", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/provider/vehicles", providerToken, nil)
		requireStatus(t, w, 200)
		assert.ElementsMatch(t, []string{"v-1", "v-5", "v-9"}, resultIDs(t, decodeBody(t, w)))
	})

	t.Run("query narrows the fleet", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/provider/vehicles?q=kia", providerToken, nil)
		requireStatus(t, w, 200)
		assert.Equal(t, []string{"v-9"}, resultIDs(t, decodeBody(t, w)))
	})

	t.Run("customers are rejected", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/provider/vehicles", customerToken, nil)
		requireStatus(t, w, 403)
	})
}

func TestContentEndpoints(t *testing.T) {
	r, _, _ := newTestServer(t)

	t.Run("locations", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/locations", "", nil)
		requireStatus(t, w, 200)
		locations, ok := decodeBody(t, w)["locations"].([]interface{})
		require.True(t, ok)
		assert.Len(t, locations, 10)
	})

	t.Run("faqs", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/faqs", "", nil)
		requireStatus(t, w, 200)
		faqs, ok := decodeBody(t, w)["faqs"].([]interface{})
		require.True(t, ok)
		assert.Len(t, faqs, 8)
	})

	t.Run("contact accepts and acknowledges", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/api/contact", "", map[string]string{
			"name":    "Jordan",
			"email":   "jordan@example.com",
			"message": "When do you expand to St. Louis?",
		})
		requireStatus(t, w, 202)
		assert.NotEmpty(t, decodeBody(t, w)["id"])
	})

	t.Run("contact rejects bad input", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/api/contact", "", map[string]string{
			"name": "Jordan",
		})
		requireStatus(t, w, 400)
	})
}
