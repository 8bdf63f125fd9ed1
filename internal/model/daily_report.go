package model

import "time"

// DailyReport is the metadata row recorded for each generated report file.
// The file itself is written to the reports directory; this row is what the
// admin report browser lists.
type DailyReport struct {
    ID             string    `json:"id"`
    ReportDate     string    `json:"report_date"` // "YYYY-MM-DD"
    ReportType     string    `json:"report_type"` // tickets | platform_tickets | verification_logs | revenue
    FileName       string    `json:"file_name"`
    FilePath       string    `json:"file_path"`
    FileSize       int64     `json:"file_size"`
    WorkingStation *string   `json:"working_station,omitempty"` // nil = all stations
    CreatedAt      time.Time `json:"created_at"`
}
