package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// CreateReservation -> book a table. All required fields missing from the
// request are reported together in one response.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID   string `json:"table_id"`
		StartTime string `json:"start_time"`
		GuestName string `json:"guest_name"`
		Phone     string `json:"phone"`
		PartySize int    `json:"party_size"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var missing []string
	if req.TableID == "" {
		missing = append(missing, "table_id")
	}
	if req.StartTime == "" {
		missing = append(missing, "start_time")
	}
	if req.GuestName == "" {
		missing = append(missing, "guest_name")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.PartySize == 0 {
		missing = append(missing, "party_size")
	}
	if len(missing) > 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("missing fields: %s", strings.Join(missing, ", ")))
		return
	}

	reservation, err := rc.Reservations.Create(req.TableID, req.StartTime, req.GuestName, req.Phone, req.PartySize, req.Notes)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// UpdateReservation -> change fields of an active reservation
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	var req struct {
		TableID   *string `json:"table_id"`
		StartTime *string `json:"start_time"`
		GuestName *string `json:"guest_name"`
		Phone     *string `json:"phone"`
		PartySize *int    `json:"party_size"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.Update(reservationID, services.ReservationUpdate{
		TableID:   req.TableID,
		StartTime: req.StartTime,
		GuestName: req.GuestName,
		Phone:     req.Phone,
		PartySize: req.PartySize,
		Notes:     req.Notes,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CancelReservation -> mark a reservation as cancelled
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if err := rc.Reservations.Cancel(reservationID); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", gin.H{"id": reservationID})
}

// MarkArrived -> the guest showed up
func (rc *ReservationController) MarkArrived(c *gin.Context) {
	reservation, err := rc.Reservations.MarkArrived(c.Param("reservation_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation marked as arrived", reservation)
}

// ClearReservations -> wipe the whole reservation log
func (rc *ReservationController) ClearReservations(c *gin.Context) {
	if err := rc.Reservations.ClearAll(); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations cleared", nil)
}
