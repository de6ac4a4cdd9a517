package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"rentacar/database"
	"rentacar/models"
)

// CreateReservation records a visitor booking request. The reservation
// always starts in the pending status regardless of client input.
func CreateReservation(req models.ReservationRequest) (*models.Reservation, error) {
	db := database.GetDB()

	// Validate the date range
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	reservation := &models.Reservation{
		ID:              uuid.NewString(),
		VehicleID:       req.VehicleID,
		VehicleName:     req.VehicleName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		LicenseNumber:   req.LicenseNumber,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	}

	_, err = db.Exec(`
		INSERT INTO reservations (id, vehicle_id, vehicle_name, start_date, end_date,
			license_number, pickup_location, dropoff_location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, reservation.ID, reservation.VehicleID, reservation.VehicleName,
		reservation.StartDate, reservation.EndDate, reservation.LicenseNumber,
		reservation.PickupLocation, reservation.DropoffLocation,
		reservation.Status, reservation.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	log.Printf("Reservation created: %s for vehicle %s (%s - %s)",
		reservation.ID, reservation.VehicleName, reservation.StartDate, reservation.EndDate)
	return reservation, nil
}

// GetAllReservations returns all reservations, newest first
func GetAllReservations() ([]models.Reservation, error) {
	db := database.GetDB()

	rows, err := db.Query(`
		SELECT id, vehicle_id, vehicle_name, start_date, end_date,
			license_number, pickup_location, dropoff_location, status, created_at
		FROM reservations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var r models.Reservation
		err := rows.Scan(&r.ID, &r.VehicleID, &r.VehicleName, &r.StartDate, &r.EndDate,
			&r.LicenseNumber, &r.PickupLocation, &r.DropoffLocation, &r.Status, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}

	return reservations, rows.Err()
}

// UpdateReservationStatus changes a reservation's status. Transitions are
// unconstrained; only membership in the status enum is checked.
func UpdateReservationStatus(id, status string) (*models.Reservation, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown reservation status %q", status)
	}

	db := database.GetDB()

	var r models.Reservation
	err := db.QueryRow(`
		UPDATE reservations
		SET status = $1
		WHERE id = $2
		RETURNING id, vehicle_id, vehicle_name, start_date, end_date,
			license_number, pickup_location, dropoff_location, status, created_at
	`, status, id).Scan(&r.ID, &r.VehicleID, &r.VehicleName, &r.StartDate, &r.EndDate,
		&r.LicenseNumber, &r.PickupLocation, &r.DropoffLocation, &r.Status, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reservation %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	log.Printf("Reservation %s status changed to %q", id, status)
	return &r, nil
}

// DeleteReservation removes a reservation
func DeleteReservation(id string) error {
	db := database.GetDB()

	res, err := db.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("reservation %s not found", id)
	}

	log.Printf("Reservation deleted: %s", id)
	return nil
}
