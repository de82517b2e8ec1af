package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Summary error codes (SUMMARY_*)
const (
	SummaryMissingParameter ErrorCode = "SUMMARY_001"
	SummaryInvalidPeriod    ErrorCode = "SUMMARY_002"
	SummaryNotFound         ErrorCode = "SUMMARY_003"
	SummaryDatabaseError    ErrorCode = "SUMMARY_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidType   ErrorCode = "CATEGORY_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Summary errors
	SummaryMissingParameter: "Required summary parameters are missing",
	SummaryInvalidPeriod:    "Invalid period type or period value",
	SummaryNotFound:         "No transactions found for the selected period",
	SummaryDatabaseError:    "Failed to compute summary",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction type",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidType:   "Invalid category type",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
