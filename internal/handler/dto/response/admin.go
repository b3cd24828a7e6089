package response

import (
	"booking-intake/internal/domain/document"
	"booking-intake/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AdminBookingsResponse struct {
	Success       bool              `json:"success"`
	Bookings      []document.Record `json:"bookings"`
	Contacts      []document.Record `json:"contacts"`
	TotalBookings int               `json:"total_bookings"`
	TotalContacts int               `json:"total_contacts"`
}

type BookingStatusResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Booking document.Record `json:"booking"`
}

func FromAdminOverview(o *queries.AdminOverview) (*AdminBookingsResponse, error) {
	resp := &AdminBookingsResponse{Success: true}
	if err := copier.Copy(resp, o); err != nil {
		return nil, err
	}
	if resp.Bookings == nil {
		resp.Bookings = []document.Record{}
	}
	if resp.Contacts == nil {
		resp.Contacts = []document.Record{}
	}
	return resp, nil
}
