package models

import "time"

// Reservation statuses. The values are the historical French labels the
// booking workflow has always used on the wire.
const (
	StatusPending    = "en attente"
	StatusInProgress = "en cours"
	StatusCompleted  = "terminé"
)

// Badge styles for rendering a reservation status
const (
	BadgeWarning = "warning"
	BadgeInfo    = "info"
	BadgeSuccess = "success"
	BadgeDefault = "default"
)

// Reservation represents a booking request tying a visitor to a vehicle
// and a date range
type Reservation struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicleId"`
	VehicleName string `json:"vehicleName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	// LicenseNumber carries the customer's contact phone number; the
	// historical field name is kept for wire compatibility.
	LicenseNumber   string    `json:"licenseNumber"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReservationRequest represents a visitor booking submission
type ReservationRequest struct {
	VehicleID       string `json:"vehicleId" binding:"required"`
	VehicleName     string `json:"vehicleName" binding:"required"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"required"`
	LicenseNumber   string `json:"licenseNumber" binding:"required"`
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation" binding:"required"`
}

// StatusUpdateRequest represents an admin status change
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ValidStatus reports whether s is one of the known reservation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// StatusBadge maps a reservation status to its display badge style.
// Unknown values fall back to the neutral badge.
func StatusBadge(status string) string {
	switch status {
	case StatusPending:
		return BadgeWarning
	case StatusInProgress:
		return BadgeInfo
	case StatusCompleted:
		return BadgeSuccess
	default:
		return BadgeDefault
	}
}
