package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentacar/models"
	"rentacar/services"
)

// GetVehicles returns the full vehicle catalog
func GetVehicles(c *gin.Context) {
	vehicles, err := services.GetAllVehicles()
	if err != nil {
		log.Printf("Error getting vehicles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicles"})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle returns vehicle details by ID
func GetVehicle(c *gin.Context) {
	id := c.Param("id")

	vehicle, err := services.GetVehicleByID(id)
	if err != nil {
		log.Printf("Error getting vehicle: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle adds a new vehicle to the catalog
func CreateVehicle(c *gin.Context) {
	var req models.VehicleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := services.CreateVehicle(req)
	if err != nil {
		log.Printf("Error creating vehicle: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle replaces an existing vehicle record in full
func UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var req models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := services.UpdateVehicle(id, req)
	if err != nil {
		log.Printf("Error updating vehicle: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle from the catalog
func DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	if err := services.DeleteVehicle(id); err != nil {
		log.Printf("Error deleting vehicle: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
