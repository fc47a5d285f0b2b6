// Package repository defines sentinel errors shared across the
// repositories.  Handlers and services compare against these values
// to decide which HTTP status to answer; everything else is treated
// as a storage fault.
package repository

import "errors"

// ErrEventNotFound is returned when an event id does not resolve.
// Handlers translate this into an HTTP 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrDrinkNotFound is returned when a drink line item id does not
// resolve.  Handlers translate this into an HTTP 404 response.
var ErrDrinkNotFound = errors.New("drink not found")
