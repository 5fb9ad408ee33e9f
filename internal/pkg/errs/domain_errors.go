package errs

// Category markers shared across layers
var (
	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
	ErrDeliveryFailed          = New("message delivery failed")
)
