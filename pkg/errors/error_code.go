package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidThreshold     ErrorCode = 103
	ErrCodeInsufficientData     ErrorCode = 104
	ErrCodeMalformedInput       ErrorCode = 105

	// Data errors (200-299)
	ErrCodeDataNotFound     ErrorCode = 200
	ErrCodeDataUnsorted     ErrorCode = 201
	ErrCodeDataParseFailed  ErrorCode = 202
	ErrCodeDataFileMissing  ErrorCode = 203
	ErrCodeDuplicateDate    ErrorCode = 204
	ErrCodeNonPositivePrice ErrorCode = 205

	// Analysis errors (400-499)
	ErrCodeEmptySample ErrorCode = 400
)
