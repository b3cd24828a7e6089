package api

import (
	"net/http"

	"booking-intake/internal/domain/booking"
	reqdto "booking-intake/internal/handler/dto/request"
	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"
	"booking-intake/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.DocumentQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.DocumentQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings and contacts
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.AdminBookingsResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	overview, err := h.q.GetAdminOverview(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	resp, err := resdto.FromAdminOverview(overview)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update booking status
// @Description Move a booking to pending, confirmed or rejected. Confirming sends the customer an email.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status is required", nil)
		return
	}

	updated, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status. Must be pending, confirmed, or rejected", nil)
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errs.Is(err, errs.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is already booked by another confirmed or pending booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error saving data", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookingStatusResponse{
		Success: true,
		Message: "Booking status updated to " + updated.String(booking.FieldStatus),
		Booking: updated,
	})
}

// @Summary Delete booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error saving data", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Booking deleted successfully"))
}
