package leave

import "errors"

var (
	ErrLeaveRecordNotFound = errors.New("leave record not found")
	ErrInvalidDateRange    = errors.New("leave end date must not be before start date")
)
