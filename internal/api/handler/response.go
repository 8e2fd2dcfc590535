package handler

// response is the success envelope shared by all handlers; errors go through
// the central error handler instead.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) response {
	return response{Success: true, Data: data}
}

func okMsg(message string, data any) response {
	return response{Success: true, Message: message, Data: data}
}
