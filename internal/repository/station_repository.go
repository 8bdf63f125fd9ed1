package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// StationRepo provides CRUD operations for stations.  Station rows use
// UUID primary keys generated here rather than in the database.  Name and
// code uniqueness within a working-station network is enforced by unique
// indexes; violations surface as MySQL error 1062 and are mapped to
// ErrConflict.
type StationRepo struct {
    db *sql.DB
}

// NewStationRepo returns a new StationRepo bound to the given database.
func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{db: db} }

const stationCols = `id, name, code, address, working_station, created_at`

// Create inserts a new station and populates its generated ID.  The code
// is stored upper-cased so travel ID prefixes compare consistently.
func (r *StationRepo) Create(ctx context.Context, st *model.Station) error {
    st.ID = uuid.NewString()
    st.Code = strings.ToUpper(strings.TrimSpace(st.Code))
    _, err := r.db.ExecContext(ctx,
        `INSERT INTO stations (id, name, code, address, working_station) VALUES (?, ?, ?, ?, ?)`,
        st.ID, st.Name, st.Code, st.Address, st.WorkingStation)
    if err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrConflict
        }
        return err
    }
    return r.db.QueryRowContext(ctx,
        `SELECT created_at FROM stations WHERE id = ?`, st.ID).Scan(&st.CreatedAt)
}

// GetByID fetches a single station.
func (r *StationRepo) GetByID(ctx context.Context, id string) (*model.Station, error) {
    row := r.db.QueryRowContext(ctx,
        `SELECT `+stationCols+` FROM stations WHERE id = ?`, id)
    return scanStation(row)
}

// List returns stations ordered by name.  When workingStation is non-empty
// only that network's stations are returned.
func (r *StationRepo) List(ctx context.Context, workingStation string) ([]model.Station, error) {
    q := `SELECT ` + stationCols + ` FROM stations`
    args := []interface{}{}
    if workingStation != "" {
        q += ` WHERE working_station = ?`
        args = append(args, workingStation)
    }
    q += ` ORDER BY name`
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Station
    for rows.Next() {
        st, err := scanStationRows(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *st)
    }
    return out, rows.Err()
}

// Update changes a station's mutable fields.
func (r *StationRepo) Update(ctx context.Context, st *model.Station) error {
    res, err := r.db.ExecContext(ctx,
        `UPDATE stations SET name = ?, code = ?, address = ?, working_station = ? WHERE id = ?`,
        st.Name, strings.ToUpper(strings.TrimSpace(st.Code)), st.Address, st.WorkingStation, st.ID)
    if err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrConflict
        }
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrStationNotFound
    }
    return nil
}

// Delete removes a station.  Stations still referenced by route halts are
// protected by foreign keys; MySQL reports error 1451 and the caller gets
// ErrConflict so the handler can explain why the delete was refused.
func (r *StationRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE id = ?`, id)
    if err != nil {
        if strings.Contains(err.Error(), "1451") {
            return ErrConflict
        }
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrStationNotFound
    }
    return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanStation(row *sql.Row) (*model.Station, error) {
    st, err := scanStationRows(row)
    if err == sql.ErrNoRows {
        return nil, ErrStationNotFound
    }
    return st, err
}

func scanStationRows(s rowScanner) (*model.Station, error) {
    var st model.Station
    var addr, ws sql.NullString
    if err := s.Scan(&st.ID, &st.Name, &st.Code, &addr, &ws, &st.CreatedAt); err != nil {
        return nil, err
    }
    if addr.Valid {
        st.Address = &addr.String
    }
    if ws.Valid {
        st.WorkingStation = &ws.String
    }
    return &st, nil
}
