package adminclient

import (
	"fmt"
	"log"
)

// ReservationController lists reservations and applies administrative
// actions. Failed actions are logged with a distinguishable prefix and
// returned to the caller instead of being swallowed; no optimistic UI
// update is ever made, so nothing needs rolling back.
type ReservationController struct {
	client  *Client
	catalog *Catalog

	// Confirm gates destructive actions. A nil Confirm rejects deletes.
	Confirm func(prompt string) bool
}

// NewReservationController creates a controller over the shared catalog store
func NewReservationController(client *Client, catalog *Catalog) *ReservationController {
	return &ReservationController{client: client, catalog: catalog}
}

// UpdateStatus issues a status change then refetches the reservation list
func (rc *ReservationController) UpdateStatus(id, status string) error {
	if _, err := rc.client.UpdateReservationStatus(id, status); err != nil {
		log.Printf("admin action failed: update reservation %s status: %v", id, err)
		return err
	}
	if err := rc.catalog.RefreshReservations(); err != nil {
		log.Printf("admin action failed: refresh reservations: %v", err)
		return err
	}
	return nil
}

// Delete removes a reservation after interactive confirmation
func (rc *ReservationController) Delete(id string) error {
	if rc.Confirm == nil || !rc.Confirm("Are you sure you want to delete this reservation?") {
		return fmt.Errorf("delete not confirmed")
	}
	if err := rc.client.DeleteReservation(id); err != nil {
		log.Printf("admin action failed: delete reservation %s: %v", id, err)
		return err
	}
	if err := rc.catalog.RefreshReservations(); err != nil {
		log.Printf("admin action failed: refresh reservations: %v", err)
		return err
	}
	return nil
}

// DeleteVehicle removes a vehicle after interactive confirmation, then
// refetches the catalog.
func (rc *ReservationController) DeleteVehicle(id string) error {
	if rc.Confirm == nil || !rc.Confirm("Are you sure you want to delete this vehicle?") {
		return fmt.Errorf("delete not confirmed")
	}
	if err := rc.client.DeleteVehicle(id); err != nil {
		log.Printf("admin action failed: delete vehicle %s: %v", id, err)
		return err
	}
	if err := rc.catalog.RefreshVehicles(); err != nil {
		log.Printf("admin action failed: refresh vehicles: %v", err)
		return err
	}
	return nil
}
