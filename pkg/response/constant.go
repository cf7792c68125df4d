package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when internal details must be hidden.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
