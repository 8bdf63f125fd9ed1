package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// TicketRepo persists tickets.  All timestamp columns are stored in UTC.
//
// The verification flow relies on MarkVerified being a single conditional
// update: the WHERE clause only matches an unverified row, so of any number
// of concurrent verification attempts exactly one observes an affected row
// and wins.  There is deliberately no unique index on travel_id — IDs are
// probabilistic, and verification resolves the first match.
type TicketRepo struct {
    db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketCols = `id, travel_id, passenger_name, passenger_count,
    from_station_id, to_station_id, train_id, kilometres,
    travel_date, created_time, departure_time, arrival_time,
    price, total_price, ticket_class, class_type, seat_number,
    expires_at, is_verified, verified_by, verified_at, created_by, created_at`

// Insert persists one ticket row and populates the generated ID and
// creation timestamp.  No other write happens here: issuance is a single
// insert by design.
func (r *TicketRepo) Insert(ctx context.Context, t *model.Ticket) error {
    t.ID = uuid.NewString()
    _, err := r.db.ExecContext(ctx,
        `INSERT INTO tickets
            (id, travel_id, passenger_name, passenger_count,
             from_station_id, to_station_id, train_id, kilometres,
             travel_date, created_time, departure_time, arrival_time,
             price, total_price, ticket_class, class_type, seat_number,
             expires_at, is_verified, verified_by, verified_at, created_by)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
        t.ID, t.TravelID, t.PassengerName, t.PassengerCount,
        t.FromStationID, t.ToStationID, t.TrainID, t.Kilometres,
        t.TravelDate, t.CreatedTime, t.DepartureTime, t.ArrivalTime,
        t.Price, t.TotalPrice, t.TicketClass, t.ClassType, t.SeatNumber,
        t.ExpiresAt.UTC(), t.IsVerified, t.VerifiedBy, t.VerifiedAt, t.CreatedBy)
    if err != nil {
        return err
    }
    return r.db.QueryRowContext(ctx,
        `SELECT created_at FROM tickets WHERE id = ?`, t.ID).Scan(&t.CreatedAt)
}

// GetByTravelID looks a ticket up by exact travel ID.  Platform and
// standard tickets live in disjoint lookup namespaces: platformOnly
// restricts the match to class_type = 'platform', otherwise platform rows
// are excluded, so neither kind of ID can verify through the other flow.
func (r *TicketRepo) GetByTravelID(ctx context.Context, travelID string, platformOnly bool) (*model.Ticket, error) {
    q := `SELECT ` + ticketCols + ` FROM tickets WHERE travel_id = ?`
    if platformOnly {
        q += ` AND class_type = '` + model.ClassTypePlatform + `'`
    } else {
        q += ` AND class_type <> '` + model.ClassTypePlatform + `'`
    }
    q += ` LIMIT 1`
    t, err := scanTicket(r.db.QueryRowContext(ctx, q, travelID))
    if err == sql.ErrNoRows {
        return nil, ErrTicketNotFound
    }
    return t, err
}

// GetByID fetches a single ticket row.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*model.Ticket, error) {
    t, err := scanTicket(r.db.QueryRowContext(ctx,
        `SELECT `+ticketCols+` FROM tickets WHERE id = ?`, id))
    if err == sql.ErrNoRows {
        return nil, ErrTicketNotFound
    }
    return t, err
}

// MarkVerified flips is_verified on an unverified ticket.  It returns true
// when this call won the transition and false when the ticket was already
// verified — the affected-row count is the only arbiter, so two concurrent
// attempts can never both return true.
func (r *TicketRepo) MarkVerified(ctx context.Context, id, verifiedBy string, at time.Time) (bool, error) {
    res, err := r.db.ExecContext(ctx,
        `UPDATE tickets SET is_verified = 1, verified_by = ?, verified_at = ?
          WHERE id = ? AND is_verified = 0`,
        verifiedBy, at.UTC(), id)
    if err != nil {
        return false, err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return false, err
    }
    return n == 1, nil
}

// ListFilter narrows ListByDateRange.  Dates are inclusive "YYYY-MM-DD"
// strings matching the travel_date column.  ClassType of "platform"
// selects platform tickets, any other non-empty value selects that class,
// and the special value "railway" selects every non-platform ticket.
// CreatedByLike is a complete LIKE pattern, wildcards included, matched
// against the free-text creator identity; working-station scoping passes
// "%(Station)" so the pattern anchors on the "name (Station)" suffix.
type ListFilter struct {
    StartDate     string
    EndDate       string
    ClassType     string
    CreatedByLike string
}

// ListByDateRange returns tickets for a travel-date range, newest first.
func (r *TicketRepo) ListByDateRange(ctx context.Context, f ListFilter) ([]model.Ticket, error) {
    q := `SELECT ` + ticketCols + ` FROM tickets WHERE travel_date >= ? AND travel_date <= ?`
    args := []interface{}{f.StartDate, f.EndDate}
    switch f.ClassType {
    case "":
        // no class filter
    case "railway":
        q += ` AND class_type <> '` + model.ClassTypePlatform + `'`
    default:
        q += ` AND class_type = ?`
        args = append(args, f.ClassType)
    }
    if f.CreatedByLike != "" {
        q += ` AND created_by LIKE ?`
        args = append(args, f.CreatedByLike)
    }
    q += ` ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Ticket
    for rows.Next() {
        t, err := scanTicket(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *t)
    }
    return out, rows.Err()
}

// DeleteByTravelDate purges all tickets for one travel date.  This backs
// the admin data-management page only; nothing in the ticket lifecycle
// deletes rows.
func (r *TicketRepo) DeleteByTravelDate(ctx context.Context, travelDate string) (int64, error) {
    res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE travel_date = ?`, travelDate)
    if err != nil {
        return 0, err
    }
    return res.RowsAffected()
}

// Count returns the total number of ticket rows, for the admin dashboard.
func (r *TicketRepo) Count(ctx context.Context) (int64, error) {
    var n int64
    err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&n)
    return n, err
}

func scanTicket(s rowScanner) (*model.Ticket, error) {
    var t model.Ticket
    var from, to, train, dep, arr, seat, vby sql.NullString
    var vat sql.NullTime
    if err := s.Scan(&t.ID, &t.TravelID, &t.PassengerName, &t.PassengerCount,
        &from, &to, &train, &t.Kilometres,
        &t.TravelDate, &t.CreatedTime, &dep, &arr,
        &t.Price, &t.TotalPrice, &t.TicketClass, &t.ClassType, &seat,
        &t.ExpiresAt, &t.IsVerified, &vby, &vat, &t.CreatedBy, &t.CreatedAt); err != nil {
        return nil, err
    }
    if from.Valid {
        t.FromStationID = &from.String
    }
    if to.Valid {
        t.ToStationID = &to.String
    }
    if train.Valid {
        t.TrainID = &train.String
    }
    if dep.Valid {
        t.DepartureTime = &dep.String
    }
    if arr.Valid {
        t.ArrivalTime = &arr.String
    }
    if seat.Valid {
        t.SeatNumber = &seat.String
    }
    if vby.Valid {
        t.VerifiedBy = &vby.String
    }
    if vat.Valid {
        ts := vat.Time
        t.VerifiedAt = &ts
    }
    return &t, nil
}
