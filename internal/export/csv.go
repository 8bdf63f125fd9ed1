// Package export renders tickets and verification logs into the CSV and
// XLSX files the daily report job and the manual export endpoints serve.
package export

import (
    "encoding/csv"
    "fmt"
    "io"
    "strings"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func timeOrEmpty(t *time.Time) string {
    if t == nil {
        return ""
    }
    return t.UTC().Format("2006-01-02 15:04:05")
}

func strOrEmpty(s *string) string {
    if s == nil {
        return ""
    }
    return *s
}

// WriteTicketsCSV writes journey tickets in the column layout the report
// archive has always used.
func WriteTicketsCSV(w io.Writer, tickets []model.Ticket) error {
    cw := csv.NewWriter(w)
    if err := cw.Write([]string{
        "Travel ID", "Passenger Name", "Passengers", "Class", "Seat",
        "Travel Date", "Departure", "Arrival", "Kilometres",
        "Price", "Total Price", "Verified", "Verified By", "Verified At",
        "Issued By", "Issued At",
    }); err != nil {
        return err
    }
    for _, t := range tickets {
        verified := "No"
        if t.IsVerified {
            verified = "Yes"
        }
        rec := []string{
            t.TravelID,
            t.PassengerName,
            fmt.Sprintf("%d", t.PassengerCount),
            model.TravelClass(t.ClassType).DisplayName(),
            strOrEmpty(t.SeatNumber),
            t.TravelDate,
            strOrEmpty(t.DepartureTime),
            strOrEmpty(t.ArrivalTime),
            fmt.Sprintf("%.1f", t.Kilometres),
            fmt.Sprintf("%.2f", t.Price),
            fmt.Sprintf("%.2f", t.TotalPrice),
            verified,
            strOrEmpty(t.VerifiedBy),
            timeOrEmpty(t.VerifiedAt),
            t.CreatedBy,
            t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
        }
        if err := cw.Write(rec); err != nil {
            return err
        }
    }
    cw.Flush()
    return cw.Error()
}

// WritePlatformTicketsCSV writes platform tickets; no route columns.
func WritePlatformTicketsCSV(w io.Writer, tickets []model.Ticket) error {
    cw := csv.NewWriter(w)
    if err := cw.Write([]string{
        "Travel ID", "Passenger Name", "Passengers",
        "Price", "Total Price", "Verified", "Verified By", "Verified At",
        "Issued By", "Issued At",
    }); err != nil {
        return err
    }
    for _, t := range tickets {
        verified := "No"
        if t.IsVerified {
            verified = "Yes"
        }
        rec := []string{
            t.TravelID,
            t.PassengerName,
            fmt.Sprintf("%d", t.PassengerCount),
            fmt.Sprintf("%.2f", t.Price),
            fmt.Sprintf("%.2f", t.TotalPrice),
            verified,
            strOrEmpty(t.VerifiedBy),
            timeOrEmpty(t.VerifiedAt),
            t.CreatedBy,
            t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
        }
        if err := cw.Write(rec); err != nil {
            return err
        }
    }
    cw.Flush()
    return cw.Error()
}

// WriteVerificationLogsCSV writes the audit trail.
func WriteVerificationLogsCSV(w io.Writer, logs []model.VerificationLog) error {
    cw := csv.NewWriter(w)
    if err := cw.Write([]string{
        "Travel ID", "Status", "Fraud Attempt", "Verified By", "Verified At", "Details",
    }); err != nil {
        return err
    }
    for _, l := range logs {
        fraud := "No"
        if l.FraudAttempt {
            fraud = "Yes"
        }
        rec := []string{
            l.TravelID,
            strings.ToUpper(string(l.Status)),
            fraud,
            l.VerifiedBy,
            l.VerifiedAt.UTC().Format("2006-01-02 15:04:05"),
            l.Details,
        }
        if err := cw.Write(rec); err != nil {
            return err
        }
    }
    cw.Flush()
    return cw.Error()
}

// RevenueRow is one line of the per-class revenue summary.
type RevenueRow struct {
    ClassType  string
    Tickets    int
    Passengers int
    Revenue    float64
}

// SummariseRevenue folds tickets into per-class revenue rows, platform
// included, ordered by class presentation order with platform last.
func SummariseRevenue(tickets []model.Ticket) []RevenueRow {
    acc := map[string]*RevenueRow{}
    for _, t := range tickets {
        r, ok := acc[t.ClassType]
        if !ok {
            r = &RevenueRow{ClassType: t.ClassType}
            acc[t.ClassType] = r
        }
        r.Tickets++
        r.Passengers += t.PassengerCount
        r.Revenue += t.TotalPrice
    }
    var out []RevenueRow
    for _, c := range model.AllClasses {
        if r, ok := acc[string(c)]; ok {
            out = append(out, *r)
        }
    }
    if r, ok := acc[model.ClassTypePlatform]; ok {
        out = append(out, *r)
    }
    return out
}

// WriteRevenueCSV writes the per-class revenue summary.
func WriteRevenueCSV(w io.Writer, rows []RevenueRow) error {
    cw := csv.NewWriter(w)
    if err := cw.Write([]string{"Class", "Tickets", "Passengers", "Revenue"}); err != nil {
        return err
    }
    var tickets, passengers int
    var revenue float64
    for _, r := range rows {
        name := model.TravelClass(r.ClassType).DisplayName()
        if r.ClassType == model.ClassTypePlatform {
            name = "Platform"
        }
        rec := []string{
            name,
            fmt.Sprintf("%d", r.Tickets),
            fmt.Sprintf("%d", r.Passengers),
            fmt.Sprintf("%.2f", r.Revenue),
        }
        if err := cw.Write(rec); err != nil {
            return err
        }
        tickets += r.Tickets
        passengers += r.Passengers
        revenue += r.Revenue
    }
    if err := cw.Write([]string{
        "Total",
        fmt.Sprintf("%d", tickets),
        fmt.Sprintf("%d", passengers),
        fmt.Sprintf("%.2f", revenue),
    }); err != nil {
        return err
    }
    cw.Flush()
    return cw.Error()
}
