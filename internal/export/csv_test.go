package export

import (
    "bytes"
    "encoding/csv"
    "strings"
    "testing"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func sampleTickets() []model.Ticket {
    seat := "SLEEPER-7"
    by := "ravi (Bhusaval)"
    at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
    return []model.Ticket{
        {
            TravelID:       "AK-12345",
            PassengerName:  "Meera Joshi",
            PassengerCount: 2,
            Kilometres:     370,
            TravelDate:     "2026-09-01",
            Price:          180,
            TotalPrice:     360,
            TicketClass:    "general",
            ClassType:      "sleeper",
            SeatNumber:     &seat,
            IsVerified:     true,
            VerifiedBy:     &by,
            VerifiedAt:     &at,
            CreatedBy:      "asha (Akola)",
            CreatedAt:      at.Add(-26 * time.Hour),
        },
        {
            TravelID:       "AK-54321",
            PassengerName:  "Arun Rao",
            PassengerCount: 1,
            Kilometres:     120,
            TravelDate:     "2026-09-01",
            Price:          50,
            TotalPrice:     50,
            TicketClass:    "general",
            ClassType:      "general",
            CreatedBy:      "asha (Akola)",
            CreatedAt:      at.Add(-25 * time.Hour),
        },
    }
}

func TestWriteTicketsCSV(t *testing.T) {
    var buf bytes.Buffer
    if err := WriteTicketsCSV(&buf, sampleTickets()); err != nil {
        t.Fatal(err)
    }
    recs, err := csv.NewReader(&buf).ReadAll()
    if err != nil {
        t.Fatal(err)
    }
    if len(recs) != 3 {
        t.Fatalf("got %d rows, want header + 2", len(recs))
    }
    if recs[0][0] != "Travel ID" {
        t.Errorf("header starts with %q", recs[0][0])
    }
    row := recs[1]
    if row[0] != "AK-12345" || row[3] != "Sleeper" || row[10] != "360.00" {
        t.Errorf("unexpected row: %v", row)
    }
    if row[11] != "Yes" || row[12] != "ravi (Bhusaval)" {
        t.Errorf("verification columns wrong: %v", row[11:14])
    }
    // Unverified ticket leaves the verifier columns empty.
    if recs[2][11] != "No" || recs[2][12] != "" {
        t.Errorf("unverified columns wrong: %v", recs[2][11:14])
    }
}

func TestWriteVerificationLogsCSV(t *testing.T) {
    at := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
    logs := []model.VerificationLog{
        {TravelID: "AK-00000", VerifiedBy: "ravi (Bhusaval)", VerifiedAt: at,
            Status: model.StatusInvalid, FraudAttempt: true, Details: "Travel ID not found"},
    }
    var buf bytes.Buffer
    if err := WriteVerificationLogsCSV(&buf, logs); err != nil {
        t.Fatal(err)
    }
    out := buf.String()
    if !strings.Contains(out, "INVALID") || !strings.Contains(out, "Yes") {
        t.Errorf("fraud row not rendered: %s", out)
    }
}

func TestSummariseRevenue(t *testing.T) {
    tickets := sampleTickets()
    tickets = append(tickets, model.Ticket{
        TravelID:       "PLT-1-1",
        PassengerName:  "Visitor",
        PassengerCount: 3,
        Price:          10,
        TotalPrice:     30,
        ClassType:      model.ClassTypePlatform,
    })
    rows := SummariseRevenue(tickets)
    if len(rows) != 3 {
        t.Fatalf("got %d rows, want general, sleeper, platform", len(rows))
    }
    // Class presentation order, platform last.
    if rows[0].ClassType != "general" || rows[1].ClassType != "sleeper" || rows[2].ClassType != "platform" {
        t.Errorf("order = %s, %s, %s", rows[0].ClassType, rows[1].ClassType, rows[2].ClassType)
    }
    if rows[1].Revenue != 360 || rows[1].Passengers != 2 {
        t.Errorf("sleeper row = %+v", rows[1])
    }

    var buf bytes.Buffer
    if err := WriteRevenueCSV(&buf, rows); err != nil {
        t.Fatal(err)
    }
    if !strings.Contains(buf.String(), "Total,3,6,440.00") {
        t.Errorf("total row missing: %s", buf.String())
    }
}
