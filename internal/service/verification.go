package service

import (
    "context"
    "errors"
    "log"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// VerifyResult is the outcome of one verification attempt.  Exactly one
// of the four statuses is produced per attempt, and exactly one audit
// row is written for it.
type VerifyResult struct {
    Status  model.VerificationStatus `json:"status"`
    Message string                   `json:"message"`
    Ticket  *model.Ticket            `json:"ticket,omitempty"`
}

// Verifier runs the verify-once state machine over stored tickets.
//
// Precedence is fixed: a travel ID that does not exist is fraud, an
// expired ticket is expired even if never verified, an already-verified
// ticket is a duplicate, and only an existing, unexpired, unverified
// ticket verifies.  The valid/duplicate decision is made by the store's
// conditional update, so two concurrent attempts on the same ticket can
// never both succeed.
type Verifier struct {
    Tickets TicketStore
    Logs    LogStore
    Now     func() time.Time
}

func (v *Verifier) now() time.Time {
    if v.Now != nil {
        return v.Now()
    }
    return time.Now()
}

// Verify checks a journey travel ID on behalf of the acting TTE.
func (v *Verifier) Verify(ctx context.Context, actor model.ActingUser, travelID string) (*VerifyResult, error) {
    return v.verify(ctx, actor, travelID, false)
}

// VerifyPlatform checks a platform travel ID.  Platform and journey
// tickets live in disjoint lookup namespaces: a journey travel ID
// presented at the platform gate is "not found", not a valid ticket.
func (v *Verifier) VerifyPlatform(ctx context.Context, actor model.ActingUser, travelID string) (*VerifyResult, error) {
    return v.verify(ctx, actor, travelID, true)
}

func (v *Verifier) verify(ctx context.Context, actor model.ActingUser, travelID string, platformOnly bool) (*VerifyResult, error) {
    now := v.now().UTC()
    by := actor.DisplayIdentity()

    t, err := v.Tickets.GetByTravelID(ctx, travelID, platformOnly)
    if errors.Is(err, repository.ErrTicketNotFound) {
        v.appendLog(ctx, &model.VerificationLog{
            TravelID:     travelID,
            VerifiedBy:   by,
            VerifiedAt:   now,
            Status:       model.StatusInvalid,
            FraudAttempt: true,
            Details:      "Travel ID not found",
        })
        return &VerifyResult{
            Status:  model.StatusInvalid,
            Message: "Travel ID not found - possible fraud attempt",
        }, nil
    }
    if err != nil {
        return nil, err
    }

    if Expired(t.ExpiresAt, now) {
        v.appendLog(ctx, &model.VerificationLog{
            TicketID:   &t.ID,
            TravelID:   t.TravelID,
            VerifiedBy: by,
            VerifiedAt: now,
            Status:     model.StatusExpired,
            Details:    "Ticket has expired",
        })
        return &VerifyResult{
            Status:  model.StatusExpired,
            Message: "Ticket has expired",
            Ticket:  t,
        }, nil
    }

    if t.IsVerified {
        return v.duplicate(ctx, t, by, now), nil
    }

    won, err := v.Tickets.MarkVerified(ctx, t.ID, by, now)
    if err != nil {
        return nil, err
    }
    if !won {
        // Lost the race: someone else verified between the read and the
        // update.  Re-fetch so the duplicate details name the winner.
        if cur, err := v.Tickets.GetByTravelID(ctx, travelID, platformOnly); err == nil {
            t = cur
        }
        return v.duplicate(ctx, t, by, now), nil
    }

    t.IsVerified = true
    t.VerifiedBy = &by
    t.VerifiedAt = &now
    v.appendLog(ctx, &model.VerificationLog{
        TicketID:   &t.ID,
        TravelID:   t.TravelID,
        VerifiedBy: by,
        VerifiedAt: now,
        Status:     model.StatusValid,
        Details:    "Successfully verified",
    })
    return &VerifyResult{
        Status:  model.StatusValid,
        Message: "Ticket verified successfully",
        Ticket:  t,
    }, nil
}

func (v *Verifier) duplicate(ctx context.Context, t *model.Ticket, by string, now time.Time) *VerifyResult {
    details := "Already verified"
    if t.VerifiedBy != nil && t.VerifiedAt != nil {
        details = "Already verified by " + *t.VerifiedBy + " at " + t.VerifiedAt.UTC().Format("2006-01-02 15:04:05")
    }
    v.appendLog(ctx, &model.VerificationLog{
        TicketID:   &t.ID,
        TravelID:   t.TravelID,
        VerifiedBy: by,
        VerifiedAt: now,
        Status:     model.StatusDuplicate,
        Details:    details,
    })
    return &VerifyResult{
        Status:  model.StatusDuplicate,
        Message: "Ticket already verified",
        Ticket:  t,
    }
}

// appendLog writes the audit row for an attempt.  A failed insert is
// logged and swallowed: the verification outcome already happened and
// must not be masked by an audit failure.
func (v *Verifier) appendLog(ctx context.Context, l *model.VerificationLog) {
    if err := v.Logs.Insert(ctx, l); err != nil {
        log.Printf("verification: audit log insert failed for travel id %s: %v", l.TravelID, err)
    }
}
