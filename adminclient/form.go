package adminclient

import (
	"fmt"
	"strings"

	"rentacar/models"
)

// MaxFeatures bounds the feature label list on the vehicle form
const MaxFeatures = 8

const (
	defaultRating = 5
	defaultSeats  = 5
)

// VehicleForm collects and validates a vehicle record for create or edit.
// Field state survives a failed submission so the operator can retry.
type VehicleForm struct {
	client  *Client
	catalog *Catalog

	Name        string
	Price       string
	Description string
	Image       string
	Gallery     []string
	Rating      float64
	IsPopular   bool
	Specs       models.Specs

	features  []string
	editing   bool
	currentID string
}

// NewVehicleForm creates a form in its default (create) state
func NewVehicleForm(client *Client, catalog *Catalog) *VehicleForm {
	f := &VehicleForm{client: client, catalog: catalog}
	f.Reset()
	return f
}

// Reset returns every field to its default and leaves create semantics
func (f *VehicleForm) Reset() {
	f.Name = ""
	f.Price = ""
	f.Description = ""
	f.Image = ""
	f.Gallery = []string{}
	f.Rating = defaultRating
	f.IsPopular = false
	f.Specs = models.Specs{Seats: defaultSeats}
	f.features = []string{}
	f.editing = false
	f.currentID = ""
}

// Edit populates every field from an existing vehicle and switches the
// form to update semantics.
func (f *VehicleForm) Edit(v models.Vehicle) {
	f.Name = v.Name
	f.Price = v.Price
	f.Description = v.Description
	f.Image = v.Image
	// A vehicle without a gallery edits as an empty sequence
	f.Gallery = append([]string{}, v.Gallery...)
	f.Rating = v.Rating
	f.IsPopular = v.IsPopular
	f.Specs = v.Specs
	f.features = append([]string{}, v.Features...)
	f.editing = true
	f.currentID = v.ID
}

// Editing reports whether submission will use update semantics
func (f *VehicleForm) Editing() bool {
	return f.editing
}

// Features returns the current feature labels in order
func (f *VehicleForm) Features() []string {
	return append([]string{}, f.features...)
}

// AddFeature appends a feature label, bounded by MaxFeatures
func (f *VehicleForm) AddFeature(label string) error {
	if len(f.features) >= MaxFeatures {
		return fmt.Errorf("at most %d features allowed", MaxFeatures)
	}
	f.features = append(f.features, label)
	return nil
}

// SetFeature replaces the label at position i
func (f *VehicleForm) SetFeature(i int, label string) error {
	if i < 0 || i >= len(f.features) {
		return fmt.Errorf("no feature at position %d", i)
	}
	f.features[i] = label
	return nil
}

// RemoveFeature drops the label at position i, keeping order
func (f *VehicleForm) RemoveFeature(i int) error {
	if i < 0 || i >= len(f.features) {
		return fmt.Errorf("no feature at position %d", i)
	}
	f.features = append(f.features[:i], f.features[i+1:]...)
	return nil
}

// AttachImage uploads a single file and stores its normalized URL as the
// form's primary image. A failed upload leaves the prior image unchanged.
func (f *VehicleForm) AttachImage(file *ImageFile) error {
	url, err := f.client.UploadImage(file)
	if err != nil {
		return err
	}
	f.Image = url
	return nil
}

// AttachGallery uploads up to MaxGalleryBatch files and appends their
// normalized URLs to the gallery. Repeated calls build up a longer gallery.
func (f *VehicleForm) AttachGallery(files []*ImageFile) error {
	urls, err := f.client.UploadGallery(files)
	if err != nil {
		return err
	}
	f.Gallery = append(f.Gallery, urls...)
	return nil
}

// RemoveGalleryImage drops the gallery entry at position i. Purely local;
// the removal is provisional until the form is submitted.
func (f *VehicleForm) RemoveGalleryImage(i int) error {
	if i < 0 || i >= len(f.Gallery) {
		return fmt.Errorf("no gallery image at position %d", i)
	}
	f.Gallery = append(f.Gallery[:i], f.Gallery[i+1:]...)
	return nil
}

// Request serializes the current field state into an API payload
func (f *VehicleForm) Request() models.VehicleRequest {
	return models.VehicleRequest{
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
		Image:       f.Image,
		Gallery:     f.Gallery,
		Features:    f.features,
		Rating:      f.Rating,
		IsPopular:   f.IsPopular,
		Specs:       f.Specs,
	}
}

// Validate applies the required-field checks the form enforces before
// submission: name, price, description, transmission, fuel, consumption.
func (f *VehicleForm) Validate() error {
	required := map[string]string{
		"name":         f.Name,
		"price":        f.Price,
		"description":  f.Description,
		"transmission": f.Specs.Transmission,
		"fuel":         f.Specs.Fuel,
		"consumption":  f.Specs.Consumption,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	return nil
}

// Submit sends the current state as a create (POST) or update (PUT). On
// success the catalog is refetched in full and the form resets; on failure
// the entered data is left intact and the server's message is returned.
func (f *VehicleForm) Submit() error {
	if err := f.Validate(); err != nil {
		return err
	}

	req := f.Request()

	var err error
	if f.editing {
		_, err = f.client.UpdateVehicle(f.currentID, req)
	} else {
		_, err = f.client.CreateVehicle(req)
	}
	if err != nil {
		return fmt.Errorf("failed to save vehicle: %w", err)
	}

	if err := f.catalog.RefreshVehicles(); err != nil {
		return fmt.Errorf("vehicle saved but refresh failed: %w", err)
	}

	f.Reset()
	return nil
}
