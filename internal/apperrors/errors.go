package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found
// (or is not owned by the requesting user, which is reported identically).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates that a debit would drive a bank balance
// below zero. Kept distinct from ErrValidation so clients can render a
// specific message.
var ErrInsufficientFunds = errors.New("insufficient bank balance")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a concurrent-write conflict that survived the
// transaction manager's bounded retries.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure in the persistence layer or
// elsewhere that should surface as a 500.
var ErrInternal = errors.New("internal error")
