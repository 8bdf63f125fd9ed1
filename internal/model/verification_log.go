package model

import "time"

// VerificationStatus classifies the outcome of one verification attempt.
type VerificationStatus string

const (
    StatusValid     VerificationStatus = "valid"
    StatusInvalid   VerificationStatus = "invalid" // travel ID not found
    StatusExpired   VerificationStatus = "expired"
    StatusDuplicate VerificationStatus = "duplicate"
)

// VerificationLog is one append-only audit row.  Exactly one row is written
// per verification attempt, whatever the outcome.  TicketID is nil when the
// travel ID resolved to nothing, which is also the only case where
// FraudAttempt is set.  Rows are never updated or deleted by normal
// application flow.
type VerificationLog struct {
    ID           string             `json:"id"`
    TicketID     *string            `json:"ticket_id,omitempty"`
    TravelID     string             `json:"travel_id"`
    VerifiedBy   string             `json:"verified_by"`
    VerifiedAt   time.Time          `json:"verified_at"`
    Status       VerificationStatus `json:"status"`
    FraudAttempt bool               `json:"fraud_attempt"`
    Details      string             `json:"details,omitempty"`
}
