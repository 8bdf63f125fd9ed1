package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/utils"
)

// StaffRepo manages ticket-creator and TTE accounts.  Passwords are
// bcrypt-hashed before they reach a query; the plaintext never touches the
// table.
type StaffRepo struct {
    db *sql.DB
}

// NewStaffRepo returns a new StaffRepo bound to the given database.
func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

const staffCols = `id, staff_id, password_hash, name, role, is_active, working_station, created_at, updated_at`

// Create inserts a staff member, hashing the supplied plaintext password
// with the given bcrypt cost.  A taken staff_id surfaces as
// ErrStaffIDExists.
func (r *StaffRepo) Create(ctx context.Context, st *model.Staff, password string, cost int) error {
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return err
    }
    st.ID = uuid.NewString()
    st.PasswordHash = hash
    _, err = r.db.ExecContext(ctx,
        `INSERT INTO staff (id, staff_id, password_hash, name, role, is_active, working_station)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
        st.ID, st.StaffID, st.PasswordHash, st.Name, st.Role, st.IsActive, st.WorkingStation)
    if err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrStaffIDExists
        }
        return err
    }
    return r.db.QueryRowContext(ctx,
        `SELECT created_at, updated_at FROM staff WHERE id = ?`, st.ID).
        Scan(&st.CreatedAt, &st.UpdatedAt)
}

// GetByStaffID fetches an active staff member by login handle and role.
// Inactive accounts are invisible to login on purpose.
func (r *StaffRepo) GetByStaffID(ctx context.Context, staffID, role string) (*model.Staff, error) {
    row := r.db.QueryRowContext(ctx,
        `SELECT `+staffCols+` FROM staff
          WHERE staff_id = ? AND role = ? AND is_active = 1 LIMIT 1`,
        staffID, role)
    st, err := scanStaff(row)
    if err == sql.ErrNoRows {
        return nil, ErrStaffNotFound
    }
    return st, err
}

// GetByID fetches a staff member regardless of active flag.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
    st, err := scanStaff(r.db.QueryRowContext(ctx,
        `SELECT `+staffCols+` FROM staff WHERE id = ?`, id))
    if err == sql.ErrNoRows {
        return nil, ErrStaffNotFound
    }
    return st, err
}

// List returns staff newest first, optionally scoped to a working station.
func (r *StaffRepo) List(ctx context.Context, workingStation string) ([]model.Staff, error) {
    q := `SELECT ` + staffCols + ` FROM staff`
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
    var out []model.Staff
    for rows.Next() {
        st, err := scanStaff(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *st)
    }
    return out, rows.Err()
}

// Update changes name, role, active flag and working station.  When
// password is non-empty it is re-hashed and replaced as well.
func (r *StaffRepo) Update(ctx context.Context, st *model.Staff, password string, cost int) error {
    if password != "" {
        hash, err := utils.HashPassword(password, cost)
        if err != nil {
            return err
        }
        st.PasswordHash = hash
    }
    res, err := r.db.ExecContext(ctx,
        `UPDATE staff SET name = ?, role = ?, is_active = ?, working_station = ?, password_hash = ?
          WHERE id = ?`,
        st.Name, st.Role, st.IsActive, st.WorkingStation, st.PasswordHash, st.ID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrStaffNotFound
    }
    return nil
}

// Delete removes a staff account.  Ticket history is unaffected: tickets
// reference staff by display string, not by key.
func (r *StaffRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrStaffNotFound
    }
    return nil
}

func scanStaff(s rowScanner) (*model.Staff, error) {
    var st model.Staff
    var ws sql.NullString
    if err := s.Scan(&st.ID, &st.StaffID, &st.PasswordHash, &st.Name, &st.Role,
        &st.IsActive, &ws, &st.CreatedAt, &st.UpdatedAt); err != nil {
        return nil, err
    }
    if ws.Valid {
        st.WorkingStation = &ws.String
    }
    return &st, nil
}
