package errx

// Type categorizes an application-level failure. The set leans toward the
// failures a fetch pipeline reports: bad input, missing resources, decode
// problems, upstream trouble.
type Type string

const (
	// TypeInternal represents unexpected internal errors
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents request or input validation errors
	TypeValidation Type = "VALIDATION"

	// TypeAuthorization represents authentication/authorization errors
	TypeAuthorization Type = "AUTHORIZATION"

	// TypeNotFound represents resource not found errors
	TypeNotFound Type = "NOT_FOUND"

	// TypeConflict represents resource conflict errors
	TypeConflict Type = "CONFLICT"

	// TypeDecode represents errors decoding or validating a fetched payload
	TypeDecode Type = "DECODE"

	// TypeExternal represents errors from upstream services
	TypeExternal Type = "EXTERNAL"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
