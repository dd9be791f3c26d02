package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/middleware"
	"github.com/fqwhipz/fqwhipz-backend/internal/services"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a seeded store and memory session store into a router
// with the same layout as cmd/api.
func newTestServer(t *testing.T) (*gin.Engine, *catalog.Store, services.SessionStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	store, err := catalog.NewStore("")
	require.NoError(t, err)
	sessions := services.NewMemorySessionStore()

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", Login(store, sessions))
	auth.POST("/logout", Logout(sessions))
	auth.GET("/session", GetSession(sessions))

	api.GET("/vehicles", SearchVehicles(store))
	api.GET("/vehicles/:id", GetVehicle(store))
	api.GET("/vehicles/:id/quote", GetVehicleQuote(store, utils.DefaultFees))
	api.GET("/locations", GetLocations(store))
	api.GET("/faqs", GetFAQs(store))
	api.POST("/contact", SubmitContact(store))

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/users/profile", GetProfile(store))
	protected.POST("/bookings", CreateBooking(store, utils.DefaultFees))
	protected.GET("/bookings/customer", GetCustomerBookings(store))
	protected.GET("/bookings/provider", GetProviderBookings(store))
	protected.POST("/bookings/:id/accept", AcceptBooking(store))
	protected.POST("/bookings/:id/decline", DeclineBooking(store))
	protected.GET("/provider/vehicles", GetProviderVehicles(store))
	protected.GET("/provider/earnings", GetProviderEarnings(store))
	protected.GET("/provider/stats", GetProviderStats(store))

	return r, store, sessions
}

func tokenFor(t *testing.T, store *catalog.Store, email string) string {
	t.Helper()
	user, err := store.UserByEmail(email)
	require.NoError(t, err)
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
