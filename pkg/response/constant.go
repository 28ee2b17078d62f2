package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unhandled failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal error details from callers.
	DefaultErrorMessage = "Something went wrong"

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
