package response

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OK(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}
