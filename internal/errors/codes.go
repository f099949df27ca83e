package errors

// Error codes returned in the "error" field of every error body.
// Format: CATEGORY_SPECIFIC_DETAIL
const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput   = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID      = "VALIDATION_INVALID_ID"
	ValidationInvalidRange   = "VALIDATION_INVALID_RANGE"
	ValidationUnknownField   = "VALIDATION_UNKNOWN_FIELD"
	ValidationForbiddenField = "VALIDATION_FORBIDDEN_FIELD"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"
	ResourceDeleted  = "RESOURCE_DELETED"
	ItemNotFound     = "ITEM_NOT_FOUND"
	CartNotFound     = "CART_NOT_FOUND"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalReportError = "INTERNAL_REPORT_ERROR"
)
