package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentacar/models"
	"rentacar/services"
)

// GetReservations returns all reservations for the admin dashboard
func GetReservations(c *gin.Context) {
	reservations, err := services.GetAllReservations()
	if err != nil {
		log.Printf("Error getting reservations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reservations"})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CreateReservation records a visitor booking request
func CreateReservation(c *gin.Context) {
	var req models.ReservationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Booking request: vehicle %s, %s - %s", req.VehicleName, req.StartDate, req.EndDate)

	reservation, err := services.CreateReservation(req)
	if err != nil {
		log.Printf("Error creating reservation: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation applies an admin status change
func UpdateReservation(c *gin.Context) {
	id := c.Param("id")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := services.UpdateReservationStatus(id, req.Status)
	if err != nil {
		log.Printf("Error updating reservation status: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation removes a reservation
func DeleteReservation(c *gin.Context) {
	id := c.Param("id")

	if err := services.DeleteReservation(id); err != nil {
		log.Printf("Error deleting reservation: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
