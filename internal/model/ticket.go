package model

import "time"

// Ticket is a persisted travel or platform ticket.
//
// Two class columns exist for historical reasons: TicketClass always holds
// "general" to satisfy a legacy check constraint on the table, while
// ClassType carries the class actually sold, or "platform" for platform
// tickets.  Platform tickets have no station/train references, zero
// kilometres and a PLT- travel ID, so the two populations never collide in
// lookups.
//
// TotalPrice is computed once at issuance (price × passenger count) and
// never recomputed.  TravelID is generated, human readable, and NOT
// guaranteed unique.
type Ticket struct {
    ID             string     `json:"id"`
    TravelID       string     `json:"travel_id"`
    PassengerName  string     `json:"passenger_name"`
    PassengerCount int        `json:"passenger_count"`
    FromStationID  *string    `json:"from_station_id,omitempty"`
    ToStationID    *string    `json:"to_station_id,omitempty"`
    TrainID        *string    `json:"train_id,omitempty"`
    Kilometres     float64    `json:"kilometres"`
    TravelDate     string     `json:"travel_date"`  // "YYYY-MM-DD"
    CreatedTime    string     `json:"created_time"` // "HH:MM" time of day at issuance
    DepartureTime  *string    `json:"departure_time,omitempty"`
    ArrivalTime    *string    `json:"arrival_time,omitempty"`
    Price          float64    `json:"price"`
    TotalPrice     float64    `json:"total_price"`
    TicketClass    string     `json:"ticket_class"` // constraint column, always "general"
    ClassType      string     `json:"class_type"`   // actual class or "platform"
    SeatNumber     *string    `json:"seat_number,omitempty"`
    ExpiresAt      time.Time  `json:"expires_at"`
    IsVerified     bool       `json:"is_verified"`
    VerifiedBy     *string    `json:"verified_by,omitempty"`
    VerifiedAt     *time.Time `json:"verified_at,omitempty"`
    CreatedBy      string     `json:"created_by"` // display identity, e.g. "asha (Akola)"
    CreatedAt      time.Time  `json:"created_at"`
}

// IsPlatform reports whether this is a platform-entry ticket.
func (t *Ticket) IsPlatform() bool { return t.ClassType == ClassTypePlatform }
