package api

import (
	"net/http"

	reqdto "booking-intake/internal/handler/dto/request"
	resdto "booking-intake/internal/handler/dto/response"
	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/pkg/errs"
	"booking-intake/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Reply to contact
// @Description Send an email reply to a contact message
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body reqdto.ReplyRequest true "Reply"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/contacts/{id}/reply [post]
func (h *ContactHandler) Reply(c *gin.Context) {
	var req reqdto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Reply(c.Request.Context(), req.ToParams(c.Param("id"))); err != nil {
		switch {
		case errs.Is(err, commands.ErrReplyFieldsMissing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		case errs.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recipient address", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send email", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Reply sent successfully"))
}

// @Summary Delete contact
// @Description Delete a contact message by id, or by timestamp for records saved without one
// @Tags admin
// @Produce json
// @Param id path string true "Contact ID or timestamp"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Contact not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error saving data", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Contact deleted successfully"))
}
