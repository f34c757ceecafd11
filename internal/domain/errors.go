// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates the input failed a domain validation rule.
var ErrValidation = errors.New("validation failed")

// ErrConflict indicates the operation clashes with work already in flight.
var ErrConflict = errors.New("conflict: operation already in progress")
