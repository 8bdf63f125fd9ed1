package service

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func newVerifier(now time.Time) (*Verifier, *fakeTickets, *fakeLogs) {
    tickets := &fakeTickets{}
    logs := &fakeLogs{}
    return &Verifier{
        Tickets: tickets,
        Logs:    logs,
        Now:     func() time.Time { return now },
    }, tickets, logs
}

func seedTicket(t *testing.T, tickets *fakeTickets, travelID string, expiresAt time.Time, platform bool) *model.Ticket {
    t.Helper()
    tk := &model.Ticket{
        TravelID:       travelID,
        PassengerName:  "Meera Joshi",
        PassengerCount: 1,
        Price:          180,
        TotalPrice:     180,
        TicketClass:    "general",
        ClassType:      "sleeper",
        ExpiresAt:      expiresAt,
        CreatedBy:      "asha (Akola)",
    }
    if platform {
        tk.ClassType = model.ClassTypePlatform
    }
    if err := tickets.Insert(context.Background(), tk); err != nil {
        t.Fatal(err)
    }
    return tk
}

func TestVerifyNotFoundIsFraud(t *testing.T) {
    now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
    v, _, logs := newVerifier(now)

    res, err := v.Verify(context.Background(), tteRavi, "AK-99999")
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusInvalid {
        t.Errorf("status = %s, want invalid", res.Status)
    }
    if res.Message != "Travel ID not found - possible fraud attempt" {
        t.Errorf("message = %q", res.Message)
    }
    rows := logs.all()
    if len(rows) != 1 {
        t.Fatalf("wrote %d audit rows, want exactly 1", len(rows))
    }
    if !rows[0].FraudAttempt {
        t.Error("not-found attempts must be flagged as fraud")
    }
    if rows[0].TicketID != nil {
        t.Error("fraud rows carry no ticket reference")
    }
}

func TestVerifyExpiredBeatsDuplicate(t *testing.T) {
    now := time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC)
    v, tickets, logs := newVerifier(now)
    seedTicket(t, tickets, "AK-12345", now.Add(-time.Hour), false)

    res, err := v.Verify(context.Background(), tteRavi, "AK-12345")
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusExpired {
        t.Errorf("status = %s, want expired", res.Status)
    }
    if res.Message != "Ticket has expired" {
        t.Errorf("message = %q", res.Message)
    }
    // Expired is terminal: the ticket must stay unverified even after
    // repeated attempts, and every attempt gets its own audit row.
    if _, err := v.Verify(context.Background(), tteRavi, "AK-12345"); err != nil {
        t.Fatal(err)
    }
    cur, _ := tickets.GetByTravelID(context.Background(), "AK-12345", false)
    if cur.IsVerified {
        t.Error("expired ticket must never flip to verified")
    }
    if got := len(logs.all()); got != 2 {
        t.Errorf("wrote %d audit rows, want one per attempt", got)
    }
}

func TestVerifyThenDuplicate(t *testing.T) {
    now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
    v, tickets, logs := newVerifier(now)
    seedTicket(t, tickets, "AK-12345", now.Add(12*time.Hour), false)

    first, err := v.Verify(context.Background(), tteRavi, "AK-12345")
    if err != nil {
        t.Fatal(err)
    }
    if first.Status != model.StatusValid {
        t.Fatalf("first attempt = %s, want valid", first.Status)
    }
    if first.Message != "Ticket verified successfully" {
        t.Errorf("message = %q", first.Message)
    }
    if first.Ticket == nil || !first.Ticket.IsVerified || first.Ticket.VerifiedBy == nil {
        t.Fatal("valid result must return the verified ticket")
    }
    if *first.Ticket.VerifiedBy != "ravi (Bhusaval)" {
        t.Errorf("verified by %q", *first.Ticket.VerifiedBy)
    }

    second, err := v.Verify(context.Background(), tteRavi, "AK-12345")
    if err != nil {
        t.Fatal(err)
    }
    if second.Status != model.StatusDuplicate {
        t.Errorf("second attempt = %s, want duplicate", second.Status)
    }
    if second.Message != "Ticket already verified" {
        t.Errorf("message = %q", second.Message)
    }

    rows := logs.all()
    if len(rows) != 2 {
        t.Fatalf("wrote %d audit rows, want 2", len(rows))
    }
    if rows[0].Status != model.StatusValid || rows[1].Status != model.StatusDuplicate {
        t.Errorf("audit statuses = %s, %s", rows[0].Status, rows[1].Status)
    }
    if rows[1].Details == "" {
        t.Error("duplicate row must name the original verifier")
    }
}

func TestVerifyConcurrentAtMostOnce(t *testing.T) {
    now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
    v, tickets, logs := newVerifier(now)
    seedTicket(t, tickets, "AK-12345", now.Add(12*time.Hour), false)

    const attempts = 16
    var wg sync.WaitGroup
    results := make([]*VerifyResult, attempts)
    for i := 0; i < attempts; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            res, err := v.Verify(context.Background(), tteRavi, "AK-12345")
            if err != nil {
                t.Error(err)
                return
            }
            results[i] = res
        }(i)
    }
    wg.Wait()

    valid := 0
    for _, r := range results {
        if r == nil {
            continue
        }
        switch r.Status {
        case model.StatusValid:
            valid++
        case model.StatusDuplicate:
        default:
            t.Errorf("unexpected status %s", r.Status)
        }
    }
    if valid != 1 {
        t.Fatalf("%d attempts reported valid, want exactly 1", valid)
    }
    if got := len(logs.all()); got != attempts {
        t.Errorf("wrote %d audit rows, want one per attempt (%d)", got, attempts)
    }
}

func TestVerifyLostRaceReportsDuplicate(t *testing.T) {
    now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
    v, tickets, _ := newVerifier(now)
    seedTicket(t, tickets, "AK-12345", now.Add(12*time.Hour), false)
    tickets.failCAS = true

    res, err := v.Verify(context.Background(), tteRavi, "AK-12345")
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusDuplicate {
        t.Errorf("status = %s, want duplicate when the conditional update misses", res.Status)
    }
}

func TestVerifyNamespaceIsolation(t *testing.T) {
    now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
    v, tickets, _ := newVerifier(now)
    journey := seedTicket(t, tickets, "AK-12345", now.Add(12*time.Hour), false)
    platform := seedTicket(t, tickets, "PLT-1788172200000-7", now.Add(12*time.Hour), true)

    // A journey ticket at the platform gate is fraud, and vice versa.
    res, err := v.VerifyPlatform(context.Background(), tteRavi, journey.TravelID)
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusInvalid {
        t.Errorf("journey id at platform gate = %s, want invalid", res.Status)
    }
    res, err = v.Verify(context.Background(), tteRavi, platform.TravelID)
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusInvalid {
        t.Errorf("platform id at journey gate = %s, want invalid", res.Status)
    }

    // In its own namespace the platform ticket verifies once.
    res, err = v.VerifyPlatform(context.Background(), tteRavi, platform.TravelID)
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusValid {
        t.Errorf("platform verify = %s, want valid", res.Status)
    }
    res, err = v.VerifyPlatform(context.Background(), tteRavi, platform.TravelID)
    if err != nil {
        t.Fatal(err)
    }
    if res.Status != model.StatusDuplicate {
        t.Errorf("second platform verify = %s, want duplicate", res.Status)
    }
}
