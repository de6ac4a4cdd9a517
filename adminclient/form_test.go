package adminclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"rentacar/models"
)

func fixtureVehicle() models.Vehicle {
	return models.Vehicle{
		ID:          "v-1",
		Name:        "Volkswagen Polo",
		Price:       "80",
		Description: "Compacte et économique",
		Image:       "/uploads/polo.jpg",
		Gallery:     []string{"/uploads/polo-1.jpg", "/uploads/polo-2.jpg"},
		Features:    []string{"5 Sièges", "Climatisation", "Bluetooth"},
		Rating:      4.8,
		IsPopular:   true,
		Specs: models.Specs{
			Transmission: "Manuelle",
			Fuel:         "Diesel",
			Power:        "95 ch",
			Seats:        5,
			Consumption:  "4.5L/100km",
			Luggage:      "351L",
		},
	}
}

func requestFromVehicle(v models.Vehicle) models.VehicleRequest {
	return models.VehicleRequest{
		Name:        v.Name,
		Price:       v.Price,
		Description: v.Description,
		Image:       v.Image,
		Gallery:     v.Gallery,
		Features:    v.Features,
		Rating:      v.Rating,
		IsPopular:   v.IsPopular,
		Specs:       v.Specs,
	}
}

func TestEditThenSubmitRoundTripsUnchanged(t *testing.T) {
	original := fixtureVehicle()

	var putBody []byte
	var putPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			putPath = r.URL.Path
			putBody, _ = io.ReadAll(r.Body)
			json.NewEncoder(w).Encode(original)
		case r.Method == http.MethodGet && r.URL.Path == "/vehicles":
			json.NewEncoder(w).Encode([]models.Vehicle{original})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	catalog := NewCatalog(c)
	form := NewVehicleForm(c, catalog)

	form.Edit(original)
	if !form.Editing() {
		t.Fatalf("expected form in editing mode after Edit")
	}
	if err := form.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if putPath != "/vehicles/v-1" {
		t.Fatalf("expected PUT /vehicles/v-1, got %q", putPath)
	}

	var sent models.VehicleRequest
	if err := json.Unmarshal(putBody, &sent); err != nil {
		t.Fatalf("failed to decode PUT body: %v", err)
	}
	if want := requestFromVehicle(original); !reflect.DeepEqual(sent, want) {
		t.Fatalf("PUT body not structurally equal to original:\n got %+v\nwant %+v", sent, want)
	}
}

func TestCreateSubmitBodyAndRefetch(t *testing.T) {
	var postBody []byte
	var listCalls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/vehicles":
			postBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Vehicle{ID: "v-new"})
		case r.Method == http.MethodGet && r.URL.Path == "/vehicles":
			atomic.AddInt64(&listCalls, 1)
			json.NewEncoder(w).Encode([]models.Vehicle{{ID: "v-new", Name: "Test Car"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	catalog := NewCatalog(c)
	form := NewVehicleForm(c, catalog)

	form.Name = "Test Car"
	form.Price = "50"
	form.Description = "desc"
	form.Specs.Transmission = "Automatique"
	form.Specs.Fuel = "Essence"
	form.Specs.Consumption = "6.5"

	if err := form.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal(postBody, &sent); err != nil {
		t.Fatalf("failed to decode POST body: %v", err)
	}
	if sent["name"] != "Test Car" || sent["price"] != "50" || sent["image"] != "" {
		t.Fatalf("unexpected POST body: %v", sent)
	}

	// On success the form closes (resets) and the catalog refetches
	if form.Name != "" || form.Editing() {
		t.Fatalf("expected form reset after successful create")
	}
	if atomic.LoadInt64(&listCalls) != 1 {
		t.Fatalf("expected one vehicle refetch, got %d", listCalls)
	}
	if len(catalog.Vehicles()) != 1 {
		t.Fatalf("expected refetched catalog to hold the new vehicle")
	}
}

func TestFailedSubmitKeepsEnteredData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "price must be set"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	catalog := NewCatalog(c)
	form := NewVehicleForm(c, catalog)

	form.Name = "Test Car"
	form.Price = "50"
	form.Description = "desc"
	form.Specs.Transmission = "Manuelle"
	form.Specs.Fuel = "Diesel"
	form.Specs.Consumption = "5.0"

	err := form.Submit()
	if err == nil {
		t.Fatalf("expected submit failure")
	}
	if form.Name != "Test Car" || form.Price != "50" {
		t.Fatalf("expected entered data preserved after failure")
	}
}

func TestValidateRejectsMissingRequiredFields(t *testing.T) {
	c := New("http://example.com/api")
	form := NewVehicleForm(c, NewCatalog(c))

	form.Name = "Test Car"
	// price, description, specs left empty
	if err := form.Validate(); err == nil {
		t.Fatalf("expected validation error for missing required fields")
	}
}

func TestFeatureListIsBounded(t *testing.T) {
	c := New("http://example.com/api")
	form := NewVehicleForm(c, NewCatalog(c))

	for i := 0; i < MaxFeatures; i++ {
		if err := form.AddFeature("GPS"); err != nil {
			t.Fatalf("AddFeature %d: %v", i, err)
		}
	}
	if err := form.AddFeature("one too many"); err == nil {
		t.Fatalf("expected feature list bound at %d", MaxFeatures)
	}

	if err := form.SetFeature(0, "Bluetooth"); err != nil {
		t.Fatalf("SetFeature: %v", err)
	}
	if err := form.RemoveFeature(0); err != nil {
		t.Fatalf("RemoveFeature: %v", err)
	}
	if got := len(form.Features()); got != MaxFeatures-1 {
		t.Fatalf("expected %d features after removal, got %d", MaxFeatures-1, got)
	}
	if err := form.RemoveFeature(99); err == nil {
		t.Fatalf("expected out-of-range removal to fail")
	}
}

func TestGalleryRemovalIsLocal(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	c := New(srv.URL)
	form := NewVehicleForm(c, NewCatalog(c))
	form.Gallery = []string{"a.jpg", "b.jpg", "c.jpg"}

	if err := form.RemoveGalleryImage(1); err != nil {
		t.Fatalf("RemoveGalleryImage: %v", err)
	}
	if !reflect.DeepEqual(form.Gallery, []string{"a.jpg", "c.jpg"}) {
		t.Fatalf("unexpected gallery after removal: %v", form.Gallery)
	}
	if atomic.LoadInt64(&calls) != 0 {
		t.Fatalf("expected removal to issue no network call")
	}
}
