package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/httperr"
	"github.com/miyabidining/table-reservation-api/internal/httpresp"
	"github.com/miyabidining/table-reservation-api/internal/middleware"
	ucReservation "github.com/miyabidining/table-reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	listUC   *ucReservation.ListReservations
	cancelUC *ucReservation.CancelReservation
	slotsUC  *ucReservation.GetSlotOptions
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listUC *ucReservation.ListReservations,
	cancelUC *ucReservation.CancelReservation,
	slotsUC *ucReservation.GetSlotOptions,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		listUC:   listUC,
		cancelUC: cancelUC,
		slotsUC:  slotsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data.")
		return
	}

	r, err := h.createUC.Execute(c.Request.Context(), userID, ucReservation.CreateInput{
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Name:   req.Name,
		Phone:  req.Phone,
		Notes:  req.Notes,
	})
	if err != nil {
		var vErr *ucReservation.ValidationError
		if errors.As(err, &vErr) {
			httperr.BadRequest(c, "validation_failed", vErr.Error())
			return
		}
		httperr.Internal(c, "reservation_create_failed", "Could not save the reservation.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation":   r,
		"share_message": shareMessage(r),
	})
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	reservations, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "reservation_list_failed", "Could not load reservations.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	if err := h.cancelUC.Execute(c.Request.Context(), userID, bookingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "reservation_not_found", "Reservation does not exist.")
			return
		}
		httperr.Internal(c, "reservation_cancel_failed", "Could not cancel the reservation.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ======================================================
// SLOT OPTIONS
// ======================================================

func (h *ReservationHandler) SlotOptions(c *gin.Context) {
	options, err := h.slotsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "slot_options_failed", "Could not compute slot options.")
		return
	}

	httpresp.OK(c, options)
}
