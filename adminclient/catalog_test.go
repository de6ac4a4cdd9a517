package adminclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentacar/models"
)

func catalogWith(t *testing.T, vehicles []models.Vehicle, reservations []models.Reservation) (*Catalog, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vehicles":
			json.NewEncoder(w).Encode(vehicles)
		case "/reservations":
			json.NewEncoder(w).Encode(reservations)
		default:
			http.NotFound(w, r)
		}
	}))

	catalog := NewCatalog(New(srv.URL))
	if err := catalog.RefreshVehicles(); err != nil {
		t.Fatalf("RefreshVehicles: %v", err)
	}
	if err := catalog.RefreshReservations(); err != nil {
		t.Fatalf("RefreshReservations: %v", err)
	}
	return catalog, srv
}

func filterFixtures() []models.Vehicle {
	return []models.Vehicle{
		{ID: "1", Price: "80", Specs: models.Specs{Transmission: "Manuelle", Fuel: "Diesel"}},
		{ID: "2", Price: "75", Specs: models.Specs{Transmission: "Manuelle", Fuel: "Essence"}},
		{ID: "3", Price: "120", Specs: models.Specs{Transmission: "Automatique", Fuel: "Essence"}},
	}
}

func TestFilterTransmissionAndMaxPrice(t *testing.T) {
	catalog, srv := catalogWith(t, filterFixtures(), nil)
	defer srv.Close()

	// Only the 120-priced vehicle matches the transmission, and it fails the
	// price bound: the result must be empty.
	got := catalog.FilterVehicles(VehicleFilter{Transmission: "Automatique", MaxPrice: "100"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d vehicles", len(got))
	}
}

func TestFilterBounds(t *testing.T) {
	catalog, srv := catalogWith(t, filterFixtures(), nil)
	defer srv.Close()

	got := catalog.FilterVehicles(VehicleFilter{MinPrice: "76", MaxPrice: "121"})
	if len(got) != 2 {
		t.Fatalf("expected 2 vehicles in [76,121], got %d", len(got))
	}

	got = catalog.FilterVehicles(VehicleFilter{Fuel: "Essence"})
	if len(got) != 2 {
		t.Fatalf("expected 2 essence vehicles, got %d", len(got))
	}

	got = catalog.FilterVehicles(VehicleFilter{})
	if len(got) != 3 {
		t.Fatalf("expected empty filter to pass everything, got %d", len(got))
	}
}

func TestFilterUnparsablePriceIsNotExcludedByBounds(t *testing.T) {
	vehicles := []models.Vehicle{{ID: "1", Price: "sur demande"}}
	catalog, srv := catalogWith(t, vehicles, nil)
	defer srv.Close()

	got := catalog.FilterVehicles(VehicleFilter{MaxPrice: "100"})
	if len(got) != 1 {
		t.Fatalf("expected free-text price to pass the bound, got %d", len(got))
	}
}

func TestStatsTally(t *testing.T) {
	reservations := []models.Reservation{
		{ID: "r1", Status: models.StatusPending},
		{ID: "r2", Status: models.StatusPending},
		{ID: "r3", Status: models.StatusInProgress},
		{ID: "r4", Status: models.StatusCompleted},
		{ID: "r5", Status: "annulé"}, // unknown status counts nowhere
	}
	catalog, srv := catalogWith(t, filterFixtures(), reservations)
	defer srv.Close()

	stats := catalog.Stats()
	if stats.TotalVehicles != 3 {
		t.Errorf("TotalVehicles = %d, want 3", stats.TotalVehicles)
	}
	if stats.Pending != 2 || stats.Active != 1 || stats.Completed != 1 {
		t.Errorf("unexpected tallies: %+v", stats)
	}
}
