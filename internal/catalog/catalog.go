package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/fqwhipz/fqwhipz-backend/internal/models"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Store holds the demo dataset. Vehicles, hosts, locations and FAQs are
// seeded once and never change; bookings can be appended at runtime but
// live only for the process lifetime.
type Store struct {
	mu               sync.RWMutex
	vehicles         []models.Vehicle
	hosts            []models.Host
	customerBookings []models.Booking
	providerBookings []models.Booking
	users            []models.User
	faqs             []models.FAQ
	locations        []string
	messages         []models.ContactMessage
}

// NewStore builds a store seeded with the demo fleet and accounts.
// The demo password defaults to "demo123" and can be overridden so
// deployments don't ship the documented credentials.
func NewStore(demoPassword string) (*Store, error) {
	if demoPassword == "" {
		demoPassword = defaultDemoPassword
	}

	s := &Store{
		hosts:            seedHosts(),
		faqs:             seedFAQs(),
		locations:        seedLocations(),
		customerBookings: []models.Booking{},
		providerBookings: []models.Booking{},
	}
	s.vehicles = seedVehicles(s.hosts)
	s.customerBookings = seedCustomerBookings(s.vehicles)
	s.providerBookings = seedProviderBookings(s.vehicles)

	users, err := seedUsers(demoPassword)
	if err != nil {
		return nil, err
	}
	s.users = users

	return s, nil
}

// Vehicles returns a copy of the full fleet.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// GetVehicle looks up a vehicle by id.
func (s *Store) GetVehicle(id string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

// HostVehicles returns the vehicles owned by a host, optionally narrowed by
// a case-insensitive make/model substring query.
func (s *Store) HostVehicles(hostID, query string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	out := []models.Vehicle{}
	for _, v := range s.vehicles {
		if v.Host.ID != hostID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Make), query) &&
			!strings.Contains(strings.ToLower(v.Model), query) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Locations returns the fixed service-area city list.
func (s *Store) Locations() []string {
	out := make([]string, len(s.locations))
	copy(out, s.locations)
	return out
}

func (s *Store) FAQs() []models.FAQ {
	out := make([]models.FAQ, len(s.faqs))
	copy(out, s.faqs)
	return out
}

// UserByEmail finds a demo account by email.
func (s *Store) UserByEmail(email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UserByID finds a demo account by id.
func (s *Store) UserByID(id string) (models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// CustomerBookings returns a copy of the customer-view booking list.
func (s *Store) CustomerBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.customerBookings))
	copy(out, s.customerBookings)
	return out
}

// ProviderBookings returns the provider-view bookings for vehicles owned by
// the given host, in insertion order.
func (s *Store) ProviderBookings(hostID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.providerBookings {
		if b.Vehicle != nil && b.Vehicle.Host.ID == hostID {
			out = append(out, b)
		}
	}
	return out
}

// GetProviderBooking looks up a provider-view booking by id.
func (s *Store) GetProviderBooking(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.providerBookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

// AddBooking appends a new booking to the customer view and mirrors it into
// the provider view with the renter's name attached.
func (s *Store) AddBooking(b models.Booking, renterName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customerBookings = append(s.customerBookings, b)

	providerCopy := b
	providerCopy.Renter = renterName
	s.providerBookings = append(s.providerBookings, providerCopy)
}

// AddContactMessage records a contact-form submission.
func (s *Store) AddContactMessage(m models.ContactMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// ContactMessages returns the received contact-form submissions.
func (s *Store) ContactMessages() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
