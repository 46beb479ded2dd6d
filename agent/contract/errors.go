package contract

import "errors"

var (
	ErrModelInvoke        = errors.New("model invoke failed")
	ErrSchemaViolation    = errors.New("model response violates schema")
	ErrValidation         = errors.New("validation failed")
	ErrRetrieval          = errors.New("document retrieval failed")
	ErrServiceUnavailable = errors.New("backend service unavailable")
	ErrServiceTimeout     = errors.New("backend service timed out")
)
