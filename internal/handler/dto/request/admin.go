package request

import "booking-intake/internal/usecase/commands"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReplyRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ReplyRequest) ToParams(contactID string) commands.ReplyParams {
	return commands.ReplyParams{
		ContactID: contactID,
		To:        r.To,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}
