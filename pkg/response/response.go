package response

// Envelope is the standard API response format: every endpoint answers with
// success plus either data or an error code and human message.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success wraps data in a successful envelope.
func Success(data interface{}) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// SuccessMessage wraps data plus a human-readable confirmation.
func SuccessMessage(data interface{}, message string) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Error builds a failed envelope from a machine code and human message.
func Error(code, message string) Envelope {
	return Envelope{
		Success: false,
		Error:   code,
		Message: message,
	}
}
