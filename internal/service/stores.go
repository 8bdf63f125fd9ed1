// Package service implements the ticket lifecycle: route and fare
// resolution, travel ID and expiry generation, ticket issuance, and the
// verify-once verification state machine.  The package talks to storage
// through the narrow interfaces below so the lifecycle is testable with
// in-memory fakes; internal/repository provides the MySQL implementations.
package service

import (
    "context"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// StationStore is the station lookup surface the core needs.
type StationStore interface {
    GetByID(ctx context.Context, id string) (*model.Station, error)
}

// TrainStore exposes trains, their ordered halts and their active
// weekdays.
type TrainStore interface {
    TrainsServing(ctx context.Context, fromStationID, toStationID string) ([]model.Train, error)
    Halts(ctx context.Context, trainID string) ([]model.RouteHalt, error)
    ActiveWeekdays(ctx context.Context, trainID string) (map[time.Weekday]bool, error)
}

// TicketStore persists tickets.  MarkVerified must be atomic: it returns
// true only for the single caller that transitions the row from
// unverified to verified.
type TicketStore interface {
    Insert(ctx context.Context, t *model.Ticket) error
    GetByTravelID(ctx context.Context, travelID string, platformOnly bool) (*model.Ticket, error)
    MarkVerified(ctx context.Context, id, verifiedBy string, at time.Time) (bool, error)
}

// LogStore appends verification audit rows.
type LogStore interface {
    Insert(ctx context.Context, l *model.VerificationLog) error
}

// ValidationError reports a rejected issuance precondition.  It is
// returned before any write happens, so a validation failure never leaves
// partial state.
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(reason string) error { return &ValidationError{Reason: reason} }
