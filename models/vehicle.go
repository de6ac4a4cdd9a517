package models

import "time"

// Vehicle represents a rentable car with pricing, specs and imagery
type Vehicle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"` // daily price, kept as text on the wire
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	IsPopular   bool     `json:"isPopular"`
	Specs       Specs    `json:"specs"`

	CreatedAt time.Time `json:"createdAt"`
}

// Specs holds the technical specification of a vehicle
type Specs struct {
	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	Power        string `json:"power"`
	Seats        int    `json:"seats"`
	Consumption  string `json:"consumption"`
	Luggage      string `json:"luggage"`
}

// VehicleRequest represents a vehicle create/update payload
type VehicleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating"`
	IsPopular   bool     `json:"isPopular"`
	Specs       Specs    `json:"specs"`
}
