package api

import (
	"net/http"

	"booking-intake/internal/domain/document"
	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	cmds commands.SubmissionCommands
}

func NewSubmissionHandler(cmds commands.SubmissionCommands) *SubmissionHandler {
	return &SubmissionHandler{cmds: cmds}
}

// @Summary Save submission
// @Description Store a contact message or booking request. Bookings for a slot that is already held are rejected.
// @Tags public
// @Accept json
// @Produce json
// @Param request body map[string]any true "Submission with a type discriminator (contact or booking)"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /save [post]
func (h *SubmissionHandler) Save(c *gin.Context) {
	var rec document.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid data format", nil)
		return
	}

	if _, err := h.cmds.Submit(c.Request.Context(), rec); err != nil {
		switch {
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid data format", nil)
		case errs.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is already booked. Please choose another time.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error saving data", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Data saved successfully"))
}
