package types

// Response is the envelope every endpoint replies with
type Response struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Data    interface{}      `json:"data,omitempty"`
	Errors  ValidationErrors `json:"errors,omitempty"`
}

// OK wraps data in a successful envelope
func OK(data interface{}, message string) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope
func Fail(message string, errs ...ValidationError) Response {
	return Response{Success: false, Message: message, Errors: errs}
}
