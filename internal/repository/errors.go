// Package repository defines data access for the four event tables.
// Sentinel errors let handlers distinguish "row does not exist" from a
// transport failure and answer with a user-facing message instead of a
// generic 500.
package repository

import "errors"

// ErrUsuarioNotFound is returned when an access-code or id lookup
// yields no usuario row.
var ErrUsuarioNotFound = errors.New("usuario not found")

// ErrAsientoNotFound is returned when a seat lookup yields no rows.
var ErrAsientoNotFound = errors.New("asiento not found")

// ErrReservaNotFound is returned when a user has no reservation rows.
var ErrReservaNotFound = errors.New("reserva not found")
