// Package queue defines the domain events exchanged over the message
// broker and the background consumer that turns them into audit log
// files.
package queue

// TicketIssuedEvent is published when a ticket (journey or platform) is
// sold.  It carries enough for downstream consumers to log or feed
// analytics without querying the primary database.
type TicketIssuedEvent struct {
    TicketID       string  `json:"ticket_id"`
    TravelID       string  `json:"travel_id"`
    PassengerName  string  `json:"passenger_name"`
    PassengerCount int     `json:"passenger_count"`
    ClassType      string  `json:"class_type"`
    TravelDate     string  `json:"travel_date"`
    Kilometres     float64 `json:"kilometres"`
    TotalPrice     float64 `json:"total_price"`
    IssuedBy       string  `json:"issued_by"`
    IssuedAt       string  `json:"issued_at"`
}

// TicketVerifiedEvent is published after every verification attempt,
// whatever the outcome.
type TicketVerifiedEvent struct {
    TravelID     string `json:"travel_id"`
    Status       string `json:"status"`
    FraudAttempt bool   `json:"fraud_attempt"`
    VerifiedBy   string `json:"verified_by"`
    VerifiedAt   string `json:"verified_at"`
    Details      string `json:"details,omitempty"`
}
