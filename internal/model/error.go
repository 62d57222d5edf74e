package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned to main wraps exactly one of these.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrIO            = errors.New("io error")
	ErrNetwork       = errors.New("network error")
	ErrTransaction   = errors.New("transaction error")
	ErrNotFound      = errors.New("not found")
)

// TransactionFailedError is returned when a submitted transaction was committed
// but the VM reported failure.
type TransactionFailedError struct {
	Hash     string
	VMStatus string
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Hash, e.VMStatus)
}

// Unwrap makes errors.Is(err, ErrTransaction) hold for failed transactions.
func (e *TransactionFailedError) Unwrap() error {
	return ErrTransaction
}

// IsTransactionFailedError checks if error is TransactionFailedError
func IsTransactionFailedError(err error) bool {
	var target *TransactionFailedError
	return errors.As(err, &target)
}
