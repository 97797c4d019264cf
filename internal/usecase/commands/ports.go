package commands

import (
	"suppstore/internal/pkg/errs"
)

// Sentinels shared across command services.
var (
	ErrValidation              = errs.New("validation error")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
