package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"rentacar/database"
	"rentacar/models"
)

const vehicleColumns = `id, name, price, description, image, gallery, features,
	rating, is_popular, transmission, fuel, power, seats, consumption, luggage, created_at`

// GetAllVehicles returns the full vehicle catalog, newest first
func GetAllVehicles() ([]models.Vehicle, error) {
	db := database.GetDB()

	rows, err := db.Query(`
		SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// GetVehicleByID returns a single vehicle
func GetVehicleByID(id string) (*models.Vehicle, error) {
	db := database.GetDB()

	row := db.QueryRow(`
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE id = $1
	`, id)

	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVehicle inserts a new vehicle and returns it with its assigned ID
func CreateVehicle(req models.VehicleRequest) (*models.Vehicle, error) {
	db := database.GetDB()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO vehicles (id, name, price, description, image, gallery, features,
			rating, is_popular, transmission, fuel, power, seats, consumption, luggage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, id, req.Name, req.Price, req.Description, req.Image,
		pq.Array(orEmpty(req.Gallery)), pq.Array(orEmpty(req.Features)),
		req.Rating, req.IsPopular,
		req.Specs.Transmission, req.Specs.Fuel, req.Specs.Power,
		req.Specs.Seats, req.Specs.Consumption, req.Specs.Luggage)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	log.Printf("Vehicle created: %s (%s)", req.Name, id)
	return GetVehicleByID(id)
}

// UpdateVehicle replaces an existing vehicle record in full
func UpdateVehicle(id string, req models.VehicleRequest) (*models.Vehicle, error) {
	db := database.GetDB()

	res, err := db.Exec(`
		UPDATE vehicles
		SET name = $1, price = $2, description = $3, image = $4, gallery = $5,
			features = $6, rating = $7, is_popular = $8, transmission = $9,
			fuel = $10, power = $11, seats = $12, consumption = $13, luggage = $14
		WHERE id = $15
	`, req.Name, req.Price, req.Description, req.Image,
		pq.Array(orEmpty(req.Gallery)), pq.Array(orEmpty(req.Features)),
		req.Rating, req.IsPopular,
		req.Specs.Transmission, req.Specs.Fuel, req.Specs.Power,
		req.Specs.Seats, req.Specs.Consumption, req.Specs.Luggage, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}

	return GetVehicleByID(id)
}

// DeleteVehicle removes a vehicle from the catalog
func DeleteVehicle(id string) error {
	db := database.GetDB()

	res, err := db.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle %s not found", id)
	}

	log.Printf("Vehicle deleted: %s", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID, &v.Name, &v.Price, &v.Description, &v.Image,
		pq.Array(&v.Gallery), pq.Array(&v.Features),
		&v.Rating, &v.IsPopular,
		&v.Specs.Transmission, &v.Specs.Fuel, &v.Specs.Power,
		&v.Specs.Seats, &v.Specs.Consumption, &v.Specs.Luggage,
		&v.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return v, err
	}
	if err != nil {
		return v, fmt.Errorf("failed to scan vehicle: %w", err)
	}
	if v.Gallery == nil {
		v.Gallery = []string{}
	}
	if v.Features == nil {
		v.Features = []string{}
	}
	return v, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
