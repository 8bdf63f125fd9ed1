package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// TrainRepo provides access to trains, their ordered route halts and their
// weekly schedules.  A train is created together with its halts and
// schedule entries in one transaction so a half-written route can never be
// offered for issuance.
type TrainRepo struct {
    db *sql.DB
}

// NewTrainRepo returns a new TrainRepo bound to the given database.
func NewTrainRepo(db *sql.DB) *TrainRepo { return &TrainRepo{db: db} }

const haltCols = `id, train_id, station_id, halt_order, distance_from_start,
    arrival_time, departure_time, halt_duration,
    general_price, sleeper_price, ac_3_tier_price, ac_2_tier_price,
    ac_1_tier_price, chair_car_price, second_sitting_price, ac_3_economy_price,
    created_at`

// Create inserts a train plus its halts and schedule entries atomically.
// Halts must already be sorted by halt order; the caller's ordering is
// preserved as given.  IDs are generated here.
func (r *TrainRepo) Create(ctx context.Context, tr *model.Train, halts []model.RouteHalt, schedule []model.ScheduleEntry) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    tr.ID = uuid.NewString()
    if _, err := tx.ExecContext(ctx,
        `INSERT INTO trains (id, name, number, working_station) VALUES (?, ?, ?, ?)`,
        tr.ID, tr.Name, tr.Number, tr.WorkingStation); err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrConflict
        }
        return err
    }
    if err := insertHalts(ctx, tx, tr.ID, halts); err != nil {
        return err
    }
    if err := insertSchedule(ctx, tx, tr.ID, schedule); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return r.db.QueryRowContext(ctx,
        `SELECT created_at FROM trains WHERE id = ?`, tr.ID).Scan(&tr.CreatedAt)
}

// Update rewrites a train in place: the train row is updated and the
// halts and schedule entries are replaced wholesale, all in one
// transaction.  The train ID is stable, so tickets sold against it keep
// resolving.
func (r *TrainRepo) Update(ctx context.Context, tr *model.Train, halts []model.RouteHalt, schedule []model.ScheduleEntry) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    res, err := tx.ExecContext(ctx,
        `UPDATE trains SET name = ?, number = ?, working_station = ? WHERE id = ?`,
        tr.Name, tr.Number, tr.WorkingStation, tr.ID)
    if err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrConflict
        }
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        // RowsAffected is 0 both for a missing row and a no-op update,
        // so confirm the train exists before deciding.
        var one int
        if err := tx.QueryRowContext(ctx,
            `SELECT 1 FROM trains WHERE id = ?`, tr.ID).Scan(&one); err == sql.ErrNoRows {
            return ErrTrainNotFound
        } else if err != nil {
            return err
        }
    }
    if _, err := tx.ExecContext(ctx,
        `DELETE FROM train_routes WHERE train_id = ?`, tr.ID); err != nil {
        return err
    }
    if _, err := tx.ExecContext(ctx,
        `DELETE FROM train_schedules WHERE train_id = ?`, tr.ID); err != nil {
        return err
    }
    if err := insertHalts(ctx, tx, tr.ID, halts); err != nil {
        return err
    }
    if err := insertSchedule(ctx, tx, tr.ID, schedule); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return r.db.QueryRowContext(ctx,
        `SELECT created_at FROM trains WHERE id = ?`, tr.ID).Scan(&tr.CreatedAt)
}

func insertHalts(ctx context.Context, tx *sql.Tx, trainID string, halts []model.RouteHalt) error {
    for i := range halts {
        h := &halts[i]
        h.ID = uuid.NewString()
        h.TrainID = trainID
        if _, err := tx.ExecContext(ctx,
            `INSERT INTO train_routes
                (id, train_id, station_id, halt_order, distance_from_start,
                 arrival_time, departure_time, halt_duration,
                 general_price, sleeper_price, ac_3_tier_price, ac_2_tier_price,
                 ac_1_tier_price, chair_car_price, second_sitting_price, ac_3_economy_price)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
            h.ID, h.TrainID, h.StationID, h.HaltOrder, h.DistanceFromStart,
            h.ArrivalTime, h.DepartureTime, h.HaltDuration,
            h.GeneralPrice, h.SleeperPrice, h.AC3TierPrice, h.AC2TierPrice,
            h.AC1TierPrice, h.ChairCarPrice, h.SecondSittingPrice, h.AC3EconomyPrice); err != nil {
            return err
        }
    }
    return nil
}

func insertSchedule(ctx context.Context, tx *sql.Tx, trainID string, schedule []model.ScheduleEntry) error {
    for i := range schedule {
        s := &schedule[i]
        s.ID = uuid.NewString()
        s.TrainID = trainID
        if _, err := tx.ExecContext(ctx,
            `INSERT INTO train_schedules (id, train_id, day_of_week, is_active) VALUES (?, ?, ?, ?)`,
            s.ID, s.TrainID, s.DayOfWeek, s.IsActive); err != nil {
            return err
        }
    }
    return nil
}

// GetByID fetches a single train.
func (r *TrainRepo) GetByID(ctx context.Context, id string) (*model.Train, error) {
    var tr model.Train
    var ws sql.NullString
    err := r.db.QueryRowContext(ctx,
        `SELECT id, name, number, working_station, created_at FROM trains WHERE id = ?`,
        id).Scan(&tr.ID, &tr.Name, &tr.Number, &ws, &tr.CreatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrTrainNotFound
    }
    if err != nil {
        return nil, err
    }
    if ws.Valid {
        tr.WorkingStation = &ws.String
    }
    return &tr, nil
}

// List returns trains newest first, optionally scoped to a working-station
// network.
func (r *TrainRepo) List(ctx context.Context, workingStation string) ([]model.Train, error) {
    q := `SELECT id, name, number, working_station, created_at FROM trains`
    args := []interface{}{}
    if workingStation != "" {
        q += ` WHERE working_station = ?`
        args = append(args, workingStation)
    }
    q += ` ORDER BY created_at DESC`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Train
    for rows.Next() {
        var tr model.Train
        var ws sql.NullString
        if err := rows.Scan(&tr.ID, &tr.Name, &tr.Number, &ws, &tr.CreatedAt); err != nil {
            return nil, err
        }
        if ws.Valid {
            tr.WorkingStation = &ws.String
        }
        out = append(out, tr)
    }
    return out, rows.Err()
}

// Delete removes a train together with its halts and schedule entries
// (ON DELETE CASCADE on the child tables).
func (r *TrainRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM trains WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrTrainNotFound
    }
    return nil
}

// Halts returns a train's route halts ordered by halt order.
func (r *TrainRepo) Halts(ctx context.Context, trainID string) ([]model.RouteHalt, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+haltCols+` FROM train_routes WHERE train_id = ? ORDER BY halt_order`, trainID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.RouteHalt
    for rows.Next() {
        h, err := scanHalt(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *h)
    }
    return out, rows.Err()
}

// ActiveWeekdays returns the set of weekdays a train runs on: entries that
// exist and carry the active flag.
func (r *TrainRepo) ActiveWeekdays(ctx context.Context, trainID string) (map[time.Weekday]bool, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT day_of_week FROM train_schedules WHERE train_id = ? AND is_active = 1`, trainID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    days := make(map[time.Weekday]bool)
    for rows.Next() {
        var d int
        if err := rows.Scan(&d); err != nil {
            return nil, err
        }
        days[time.Weekday(d)] = true
    }
    return days, rows.Err()
}

// Schedule returns all schedule entries for a train, active or not, for
// the admin train inspector.
func (r *TrainRepo) Schedule(ctx context.Context, trainID string) ([]model.ScheduleEntry, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, train_id, day_of_week, is_active, created_at
           FROM train_schedules WHERE train_id = ? ORDER BY day_of_week`, trainID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.ScheduleEntry
    for rows.Next() {
        var s model.ScheduleEntry
        if err := rows.Scan(&s.ID, &s.TrainID, &s.DayOfWeek, &s.IsActive, &s.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    return out, rows.Err()
}

// TrainsServing returns trains that halt at both stations, in any order.
// Route direction and schedule gating are the fare resolver's job; this
// query only narrows the candidate set.
func (r *TrainRepo) TrainsServing(ctx context.Context, fromStationID, toStationID string) ([]model.Train, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT t.id, t.name, t.number, t.working_station, t.created_at
           FROM trains t
          WHERE EXISTS (SELECT 1 FROM train_routes WHERE train_id = t.id AND station_id = ?)
            AND EXISTS (SELECT 1 FROM train_routes WHERE train_id = t.id AND station_id = ?)
          ORDER BY t.created_at DESC`,
        fromStationID, toStationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Train
    for rows.Next() {
        var tr model.Train
        var ws sql.NullString
        if err := rows.Scan(&tr.ID, &tr.Name, &tr.Number, &ws, &tr.CreatedAt); err != nil {
            return nil, err
        }
        if ws.Valid {
            tr.WorkingStation = &ws.String
        }
        out = append(out, tr)
    }
    return out, rows.Err()
}

func scanHalt(s rowScanner) (*model.RouteHalt, error) {
    var h model.RouteHalt
    var arr, dep sql.NullString
    var prices [8]sql.NullFloat64
    if err := s.Scan(&h.ID, &h.TrainID, &h.StationID, &h.HaltOrder, &h.DistanceFromStart,
        &arr, &dep, &h.HaltDuration,
        &prices[0], &prices[1], &prices[2], &prices[3],
        &prices[4], &prices[5], &prices[6], &prices[7],
        &h.CreatedAt); err != nil {
        return nil, err
    }
    if arr.Valid {
        h.ArrivalTime = &arr.String
    }
    if dep.Valid {
        h.DepartureTime = &dep.String
    }
    dst := []**float64{
        &h.GeneralPrice, &h.SleeperPrice, &h.AC3TierPrice, &h.AC2TierPrice,
        &h.AC1TierPrice, &h.ChairCarPrice, &h.SecondSittingPrice, &h.AC3EconomyPrice,
    }
    for i, p := range prices {
        if p.Valid {
            v := p.Float64
            *dst[i] = &v
        }
    }
    return &h, nil
}
