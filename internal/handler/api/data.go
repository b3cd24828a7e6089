package api

import (
	"net/http"

	"booking-intake/internal/handler/httperr"
	"booking-intake/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	q queries.DocumentQueries
}

func NewDataHandler(q queries.DocumentQueries) *DataHandler {
	return &DataHandler{q: q}
}

// @Summary Get data
// @Description Return the stored document: contacts, bookings, testimonials and services
// @Tags public
// @Produce json
// @Success 200 {object} map[string]any
// @Router /data [get]
func (h *DataHandler) GetData(c *gin.Context) {
	doc, err := h.q.GetDocument(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, doc)
}
