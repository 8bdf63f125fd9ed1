package repository

import (
    "context"
    "database/sql"

    "github.com/google/uuid"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// ReportRepo records metadata about generated report files.
type ReportRepo struct {
    db *sql.DB
}

// NewReportRepo returns a new ReportRepo bound to the given database.
func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

// Insert records one generated report file.
func (r *ReportRepo) Insert(ctx context.Context, rep *model.DailyReport) error {
    rep.ID = uuid.NewString()
    _, err := r.db.ExecContext(ctx,
        `INSERT INTO daily_reports
            (id, report_date, report_type, file_name, file_path, file_size, working_station)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
        rep.ID, rep.ReportDate, rep.ReportType, rep.FileName, rep.FilePath,
        rep.FileSize, rep.WorkingStation)
    if err != nil {
        return err
    }
    return r.db.QueryRowContext(ctx,
        `SELECT created_at FROM daily_reports WHERE id = ?`, rep.ID).Scan(&rep.CreatedAt)
}

// ListByDate returns the report metadata rows for one report date.
func (r *ReportRepo) ListByDate(ctx context.Context, reportDate string) ([]model.DailyReport, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT id, report_date, report_type, file_name, file_path, file_size, working_station, created_at
           FROM daily_reports WHERE report_date = ? ORDER BY report_type, file_name`,
        reportDate)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.DailyReport
    for rows.Next() {
        var rep model.DailyReport
        var ws sql.NullString
        if err := rows.Scan(&rep.ID, &rep.ReportDate, &rep.ReportType, &rep.FileName,
            &rep.FilePath, &rep.FileSize, &ws, &rep.CreatedAt); err != nil {
            return nil, err
        }
        if ws.Valid {
            rep.WorkingStation = &ws.String
        }
        out = append(out, rep)
    }
    return out, rows.Err()
}

// WorkingStations returns the distinct non-null working-station tags seen
// on stations, used to fan the daily report job out per network.
func (r *ReportRepo) WorkingStations(ctx context.Context) ([]string, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT DISTINCT working_station FROM stations WHERE working_station IS NOT NULL`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []string
    for rows.Next() {
        var ws string
        if err := rows.Scan(&ws); err != nil {
            return nil, err
        }
        out = append(out, ws)
    }
    return out, rows.Err()
}
