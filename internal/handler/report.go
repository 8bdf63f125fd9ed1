package handler

import (
    "bytes"
    "context"
    "fmt"
    "net/http"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/export"
    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// ReportHandler generates the daily report archive and serves ad-hoc
// exports.  Generated files land under the reports directory with a
// metadata row per file; exports stream straight to the response.
type ReportHandler struct {
    Tickets *repository.TicketRepo
    Logs    *repository.VerificationLogRepo
    Reports *repository.ReportRepo
    Dir     string // base directory for generated report files
}

func NewReportHandler(t *repository.TicketRepo, l *repository.VerificationLogRepo, r *repository.ReportRepo, dir string) *ReportHandler {
    if dir == "" {
        dir = "reports"
    }
    return &ReportHandler{Tickets: t, Logs: l, Reports: r, Dir: dir}
}

// Generate builds one report set per working-station network plus the
// all-stations set for a report date: four CSV sections and the XLSX
// workbook each, with a metadata row per file.  Re-running for the same
// date overwrites the files and appends fresh metadata.
func (h *ReportHandler) Generate(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        date = time.Now().UTC().Format("2006-01-02")
    }
    if !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    journey, err := h.Tickets.ListByDateRange(ctx, repository.ListFilter{
        StartDate: date, EndDate: date, ClassType: "railway",
    })
    if err != nil {
        return fail(c, err)
    }
    platform, err := h.Tickets.ListByDateRange(ctx, repository.ListFilter{
        StartDate: date, EndDate: date, ClassType: model.ClassTypePlatform,
    })
    if err != nil {
        return fail(c, err)
    }
    logs, err := h.Logs.ListByDateRange(ctx, date, date)
    if err != nil {
        return fail(c, err)
    }
    stations, err := h.Reports.WorkingStations(ctx)
    if err != nil {
        return fail(c, err)
    }

    dir := filepath.Join(h.Dir, date)
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return fail(c, err)
    }

    // The empty scope is the all-stations set.
    scopes := append([]string{""}, stations...)
    var generated []model.DailyReport
    for _, station := range scopes {
        j, p, l := journey, platform, logs
        var ws *string
        if station != "" {
            st := station
            ws = &st
            j = ticketsForStation(journey, station)
            p = ticketsForStation(platform, station)
            l = logsForStation(logs, station)
        }
        reps, err := h.generateSet(ctx, dir, date, ws, j, p, l)
        if err != nil {
            return fail(c, err)
        }
        generated = append(generated, reps...)
    }
    return c.JSON(http.StatusCreated, echo.Map{"reports": generated, "date": date})
}

// generateSet writes one scope's files and records their metadata rows.
// workingStation nil means the all-stations set.
func (h *ReportHandler) generateSet(ctx context.Context, dir, date string, workingStation *string,
    journey, platform []model.Ticket, logs []model.VerificationLog) ([]model.DailyReport, error) {

    suffix := date
    if workingStation != nil {
        suffix = date + "_" + stationSlug(*workingStation)
    }

    sections := []struct {
        reportType string
        fileName   string
        render     func() ([]byte, error)
    }{
        {"tickets", fmt.Sprintf("tickets_%s.csv", suffix), func() ([]byte, error) {
            var buf bytes.Buffer
            err := export.WriteTicketsCSV(&buf, journey)
            return buf.Bytes(), err
        }},
        {"platform_tickets", fmt.Sprintf("platform_tickets_%s.csv", suffix), func() ([]byte, error) {
            var buf bytes.Buffer
            err := export.WritePlatformTicketsCSV(&buf, platform)
            return buf.Bytes(), err
        }},
        {"verification_logs", fmt.Sprintf("verification_logs_%s.csv", suffix), func() ([]byte, error) {
            var buf bytes.Buffer
            err := export.WriteVerificationLogsCSV(&buf, logs)
            return buf.Bytes(), err
        }},
        {"revenue", fmt.Sprintf("revenue_%s.csv", suffix), func() ([]byte, error) {
            var buf bytes.Buffer
            all := append(append([]model.Ticket{}, journey...), platform...)
            err := export.WriteRevenueCSV(&buf, export.SummariseRevenue(all))
            return buf.Bytes(), err
        }},
        {"workbook", fmt.Sprintf("report_%s.xlsx", suffix), func() ([]byte, error) {
            var buf bytes.Buffer
            err := export.WriteWorkbook(&buf, journey, platform, logs)
            return buf.Bytes(), err
        }},
    }

    var generated []model.DailyReport
    for _, sec := range sections {
        data, err := sec.render()
        if err != nil {
            return nil, err
        }
        path := filepath.Join(dir, sec.fileName)
        if err := os.WriteFile(path, data, 0o644); err != nil {
            return nil, err
        }
        rep := model.DailyReport{
            ReportDate:     date,
            ReportType:     sec.reportType,
            FileName:       sec.fileName,
            FilePath:       path,
            FileSize:       int64(len(data)),
            WorkingStation: workingStation,
        }
        if err := h.Reports.Insert(ctx, &rep); err != nil {
            return nil, err
        }
        generated = append(generated, rep)
    }
    return generated, nil
}

// scopedToStation reports whether a "name (Station)" identity belongs to
// the given working station.  The same suffix anchor backs the ticket
// list's working-station scoping.
func scopedToStation(identity, station string) bool {
    return strings.HasSuffix(identity, "("+station+")")
}

func ticketsForStation(tickets []model.Ticket, station string) []model.Ticket {
    out := make([]model.Ticket, 0, len(tickets))
    for _, t := range tickets {
        if scopedToStation(t.CreatedBy, station) {
            out = append(out, t)
        }
    }
    return out
}

func logsForStation(logs []model.VerificationLog, station string) []model.VerificationLog {
    out := make([]model.VerificationLog, 0, len(logs))
    for _, l := range logs {
        if scopedToStation(l.VerifiedBy, station) {
            out = append(out, l)
        }
    }
    return out
}

func stationSlug(s string) string {
    return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}

// List returns the report metadata rows for one date.
func (h *ReportHandler) List(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "" {
        date = time.Now().UTC().Format("2006-01-02")
    }
    if !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    reports, err := h.Reports.ListByDate(ctx, date)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"reports": reports, "date": date})
}

// ExportTicketsCSV streams a ticket CSV for an inclusive travel-date
// range without touching the report archive.
func (h *ReportHandler) ExportTicketsCSV(c echo.Context) error {
    start, end, ok := dateRange(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    tickets, err := h.Tickets.ListByDateRange(ctx, repository.ListFilter{
        StartDate: start, EndDate: end, ClassType: c.QueryParam("class_type"),
    })
    if err != nil {
        return fail(c, err)
    }

    var buf bytes.Buffer
    if err := export.WriteTicketsCSV(&buf, tickets); err != nil {
        return fail(c, err)
    }
    name := fmt.Sprintf("tickets_%s_%s.csv", start, end)
    c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
    return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportWorkbook streams the full XLSX workbook for a travel-date range.
func (h *ReportHandler) ExportWorkbook(c echo.Context) error {
    start, end, ok := dateRange(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    journey, err := h.Tickets.ListByDateRange(ctx, repository.ListFilter{
        StartDate: start, EndDate: end, ClassType: "railway",
    })
    if err != nil {
        return fail(c, err)
    }
    platform, err := h.Tickets.ListByDateRange(ctx, repository.ListFilter{
        StartDate: start, EndDate: end, ClassType: model.ClassTypePlatform,
    })
    if err != nil {
        return fail(c, err)
    }
    logs, err := h.Logs.ListByDateRange(ctx, start, end)
    if err != nil {
        return fail(c, err)
    }

    var buf bytes.Buffer
    if err := export.WriteWorkbook(&buf, journey, platform, logs); err != nil {
        return fail(c, err)
    }
    name := fmt.Sprintf("report_%s_%s.xlsx", start, end)
    c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
    return c.Blob(http.StatusOK,
        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func dateRange(c echo.Context) (start, end string, ok bool) {
    today := time.Now().UTC().Format("2006-01-02")
    start = c.QueryParam("start_date")
    end = c.QueryParam("end_date")
    if start == "" {
        start = today
    }
    if end == "" {
        end = today
    }
    return start, end, validDate(start) && validDate(end)
}
