package repository

import (
    "context"
    "database/sql"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// VerificationLogRepo is append-only: the only write is Insert.  Bulk
// deletion exists solely for the admin data purge and lives in its own
// method so the audit-trail contract stays visible in the API.
type VerificationLogRepo struct {
    db *sql.DB
}

// NewVerificationLogRepo returns a new VerificationLogRepo bound to the
// given database.
func NewVerificationLogRepo(db *sql.DB) *VerificationLogRepo {
    return &VerificationLogRepo{db: db}
}

// Insert appends one audit row and populates its generated ID.
func (r *VerificationLogRepo) Insert(ctx context.Context, l *model.VerificationLog) error {
    l.ID = uuid.NewString()
    _, err := r.db.ExecContext(ctx,
        `INSERT INTO verification_logs
            (id, ticket_id, travel_id, verified_by, verified_at, status, fraud_attempt, details)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
        l.ID, l.TicketID, l.TravelID, l.VerifiedBy, l.VerifiedAt.UTC(),
        string(l.Status), l.FraudAttempt, l.Details)
    return err
}

// ListByDateRange returns log rows whose verification instant falls within
// the inclusive date range, newest first.
func (r *VerificationLogRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]model.VerificationLog, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, ticket_id, travel_id, verified_by, verified_at, status, fraud_attempt, details
           FROM verification_logs
          WHERE verified_at >= ? AND verified_at <= CONCAT(?, ' 23:59:59')
          ORDER BY verified_at DESC`,
        startDate, endDate)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.VerificationLog
    for rows.Next() {
        var l model.VerificationLog
        var ticketID, details sql.NullString
        if err := rows.Scan(&l.ID, &ticketID, &l.TravelID, &l.VerifiedBy,
            &l.VerifiedAt, &l.Status, &l.FraudAttempt, &details); err != nil {
            return nil, err
        }
        if ticketID.Valid {
            l.TicketID = &ticketID.String
        }
        if details.Valid {
            l.Details = details.String
        }
        out = append(out, l)
    }
    return out, rows.Err()
}

// CountByStatus returns attempt counts grouped by outcome, for the
// dashboard cards.
func (r *VerificationLogRepo) CountByStatus(ctx context.Context) (map[model.VerificationStatus]int64, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT status, COUNT(*) FROM verification_logs GROUP BY status`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make(map[model.VerificationStatus]int64)
    for rows.Next() {
        var s string
        var n int64
        if err := rows.Scan(&s, &n); err != nil {
            return nil, err
        }
        out[model.VerificationStatus(s)] = n
    }
    return out, rows.Err()
}

// CountFraud returns the number of fraud-flagged attempts.
func (r *VerificationLogRepo) CountFraud(ctx context.Context) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM verification_logs WHERE fraud_attempt = 1`).Scan(&n)
    return n, err
}

// DeleteByDate removes log rows for one calendar date.  Admin purge only.
func (r *VerificationLogRepo) DeleteByDate(ctx context.Context, date string) (int64, error) {
    res, err := r.db.ExecContext(ctx,
        `DELETE FROM verification_logs WHERE DATE(verified_at) = ?`, date)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}
