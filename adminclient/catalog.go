package adminclient

import (
	"strconv"
	"strings"
	"sync"

	"rentacar/models"
)

// Catalog is the client-side store of vehicles and reservations. It is the
// source of truth for rendering: every mutation elsewhere triggers a full
// refetch here rather than an incremental patch.
type Catalog struct {
	client *Client

	mu           sync.RWMutex
	vehicles     []models.Vehicle
	reservations []models.Reservation
}

// NewCatalog creates an empty catalog store backed by the given client
func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// RefreshVehicles reloads the full vehicle list from the API
func (s *Catalog) RefreshVehicles() error {
	vehicles, err := s.client.ListVehicles()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.vehicles = vehicles
	s.mu.Unlock()
	return nil
}

// RefreshReservations reloads the full reservation list from the API
func (s *Catalog) RefreshReservations() error {
	reservations, err := s.client.ListReservations()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.reservations = reservations
	s.mu.Unlock()
	return nil
}

// Vehicles returns the vehicles as of the last refresh
func (s *Catalog) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Reservations returns the reservations as of the last refresh
func (s *Catalog) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// VehicleFilter holds the public listing filters. Empty fields are
// inactive; prices are compared as integers parsed from the text fields.
type VehicleFilter struct {
	Transmission string
	Fuel         string
	MinPrice     string
	MaxPrice     string
}

// FilterVehicles applies the filter to the cached vehicle list
func (s *Catalog) FilterVehicles(f VehicleFilter) []models.Vehicle {
	matched := []models.Vehicle{}
	for _, v := range s.Vehicles() {
		if matchesFilter(v, f) {
			matched = append(matched, v)
		}
	}
	return matched
}

func matchesFilter(v models.Vehicle, f VehicleFilter) bool {
	if f.Transmission != "" && v.Specs.Transmission != f.Transmission {
		return false
	}
	if f.Fuel != "" && v.Specs.Fuel != f.Fuel {
		return false
	}
	// A price that fails to parse is never excluded by the bounds
	if f.MinPrice != "" {
		price, pok := parsePrice(v.Price)
		min, bok := parsePrice(f.MinPrice)
		if pok && bok && price < min {
			return false
		}
	}
	if f.MaxPrice != "" {
		price, pok := parsePrice(v.Price)
		max, bok := parsePrice(f.MaxPrice)
		if pok && bok && price > max {
			return false
		}
	}
	return true
}

func parsePrice(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Stats summarizes the dashboard header counters
type Stats struct {
	TotalVehicles int
	Active        int
	Pending       int
	Completed     int
}

// Stats tallies vehicles and reservations by status as of the last refresh
func (s *Catalog) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{TotalVehicles: len(s.vehicles)}
	for _, r := range s.reservations {
		switch r.Status {
		case models.StatusInProgress:
			st.Active++
		case models.StatusPending:
			st.Pending++
		case models.StatusCompleted:
			st.Completed++
		}
	}
	return st
}
