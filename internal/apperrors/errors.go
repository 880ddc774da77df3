package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource is in a state that rejects the requested change.
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInternal is a generic internal failure surfaced to callers without detail.
var ErrInternal = errors.New("internal error")

// ErrNotCancellable indicates a booking is missing, already cancelled, or otherwise
// not in a cancellable state.
var ErrNotCancellable = errors.New("booking is not in cancellable state")

// ErrIndeterminate indicates a provider call timed out or failed in a way where the
// order may or may not exist upstream. Callers must not blindly retry.
var ErrIndeterminate = errors.New("provider outcome indeterminate")

// ErrUnreconciled indicates the provider confirmed an order but the local booking
// record could not be written. The GDS mapping row is the recovery anchor.
var ErrUnreconciled = errors.New("booked upstream, not yet reconciled")

// ErrOfferIntegrity indicates a single provider offer carried inconsistent data
// (e.g. a negative transit gap) and was dropped from normalization.
var ErrOfferIntegrity = errors.New("offer data integrity error")
