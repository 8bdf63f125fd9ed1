// Package repository defines error values that are reused across multiple
// repositories. These sentinel values let higher layers such as handlers
// distinguish between failure scenarios: ErrConflict signals that an
// operation cannot proceed because dependent records exist (e.g. deleting
// a station that trains still halt at), while the *NotFound values map to
// HTTP 404 responses.
package repository

import "errors"

// ErrStationNotFound is returned when a station lookup matches no row.
var ErrStationNotFound = errors.New("station not found")

// ErrTrainNotFound is returned when a train lookup matches no row.
var ErrTrainNotFound = errors.New("train not found")

// ErrTicketNotFound is returned when a travel ID resolves to no ticket.
// The verification service treats this as a terminal NOT_FOUND outcome,
// not as an infrastructure error.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrStaffNotFound is returned when a staff lookup matches no row.
var ErrStaffNotFound = errors.New("staff not found")

// ErrStaffIDExists is returned when creating a staff member whose login
// handle is already taken.
var ErrStaffIDExists = errors.New("staff id already exists")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")
