package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the supplied credentials were rejected.
var ErrUnauthorized = errors.New("unauthorized")

// The errors below are raised by the balance engine and the transaction
// mapping. Each one wraps ErrValidation so callers that only care about the
// class of failure can keep matching on ErrValidation.
var (
	// ErrInvalidTransactionKind indicates a transaction that is not income, expense or transfer.
	ErrInvalidTransactionKind = fmt.Errorf("%w: invalid transaction kind", ErrValidation)

	// ErrUnknownAccount indicates a transaction referencing an account that does not exist.
	ErrUnknownAccount = fmt.Errorf("%w: unknown account", ErrValidation)

	// ErrSelfTransfer indicates a transfer whose source and destination are the same account.
	ErrSelfTransfer = fmt.Errorf("%w: transfer source and destination must differ", ErrValidation)

	// ErrInvalidAmount indicates a negative or malformed amount or fee.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)
)
