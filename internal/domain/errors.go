package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record, workout type or weight entry does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. no workout type selected, empty custom label).
// The store is left untouched when it is returned.
var ErrValidation = errors.New("validation error")

// ErrProtected is returned when deleting one of the protected default
// workout types.
var ErrProtected = errors.New("protected entity")

// ErrConflict is returned when an update would put two workouts on the
// same calendar day.
var ErrConflict = errors.New("conflict")
