package response

// Resp is the standard JSON error body. Successful inference responses are
// written unwrapped so callers get the documented payload shapes directly;
// only failures use this envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}

// FieldError identifies a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
