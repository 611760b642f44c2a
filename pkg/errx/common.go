package errx

// Convenience constructors, one per Type

// Internal creates an internal error
func Internal(message string) *Error {
	return New(message, TypeInternal)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(message, TypeValidation)
}

// Unauthorized creates an authorization error
func Unauthorized(message string) *Error {
	return New(message, TypeAuthorization)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(message, TypeNotFound)
}

// Conflict creates a conflict error
func Conflict(message string) *Error {
	return New(message, TypeConflict)
}

// Decode creates a payload decode error
func Decode(message string) *Error {
	return New(message, TypeDecode)
}

// External creates an upstream service error
func External(message string) *Error {
	return New(message, TypeExternal)
}
