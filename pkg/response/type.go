package response

// Resp is the standard JSON response body. Every endpoint, including
// middleware rejections, answers in this envelope.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
