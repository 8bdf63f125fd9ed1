package service

import (
    "context"
    "errors"
    "strings"
    "testing"
    "time"
)

func newIssuer(now time.Time) (*Issuer, *fakeTickets) {
    stations, trains := testNetwork()
    tickets := &fakeTickets{}
    return &Issuer{
        Stations: stations,
        Trains:   trains,
        Tickets:  tickets,
        Now:      func() time.Time { return now },
    }, tickets
}

func validRequest() IssueRequest {
    return IssueRequest{
        PassengerName:  "Meera Joshi",
        PassengerCount: 2,
        FromStationID:  "ST-AK",
        ToStationID:    "ST-NG",
        TrainID:        "TR-EXP",
        Class:          "sleeper",
        SeatNumber:     "SLEEPER-7",
        TravelDate:     "2026-09-01",
    }
}

func TestIssueTicket(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC)
    iss, tickets := newIssuer(now)

    tk, err := iss.IssueTicket(context.Background(), creatorAkola, validRequest())
    if err != nil {
        t.Fatal(err)
    }
    if !strings.HasPrefix(tk.TravelID, "AK-") {
        t.Errorf("travel id %q should carry the origin station code", tk.TravelID)
    }
    if tk.Kilometres != 370 {
        t.Errorf("kilometres = %v, want 370", tk.Kilometres)
    }
    if tk.Price != 180 {
        t.Errorf("price = %v, want sleeper fare 180 from the origin halt", tk.Price)
    }
    if tk.TotalPrice != 360 {
        t.Errorf("total = %v, want price x 2 passengers", tk.TotalPrice)
    }
    if tk.TicketClass != "general" || tk.ClassType != "sleeper" {
        t.Errorf("class columns = (%s, %s), want (general, sleeper)", tk.TicketClass, tk.ClassType)
    }
    wantExp := time.Date(2026, 9, 2, 10, 15, 0, 0, time.UTC)
    if !tk.ExpiresAt.Equal(wantExp) {
        t.Errorf("expires at %v, want travel date + issuance time + 24h = %v", tk.ExpiresAt, wantExp)
    }
    if tk.CreatedBy != "asha (Akola)" {
        t.Errorf("created by %q, want display identity", tk.CreatedBy)
    }
    if tk.DepartureTime == nil || *tk.DepartureTime != "08:00" {
        t.Error("departure time should come from the origin halt")
    }
    if len(tickets.rows) != 1 {
        t.Fatalf("stored %d tickets, want 1", len(tickets.rows))
    }
}

func TestIssueTicketPriceOverride(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC)
    iss, _ := newIssuer(now)

    req := validRequest()
    req.Price = fptr(250)
    tk, err := iss.IssueTicket(context.Background(), creatorAkola, req)
    if err != nil {
        t.Fatal(err)
    }
    if tk.Price != 250 {
        t.Errorf("price = %v, want the edited fare 250", tk.Price)
    }
    if tk.TotalPrice != 500 {
        t.Errorf("total = %v, want edited fare x 2 passengers", tk.TotalPrice)
    }

    req = validRequest()
    req.Price = fptr(0)
    _, err = iss.IssueTicket(context.Background(), creatorAkola, req)
    if err == nil {
        t.Fatal("zero price override accepted")
    }
    assertValidationErr(t, err)
    if err.Error() != "price must be greater than zero" {
        t.Errorf("err = %q", err)
    }
}

func TestIssueTicketValidation(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC)

    cases := []struct {
        name   string
        mutate func(*IssueRequest)
    }{
        {"blank passenger name", func(r *IssueRequest) { r.PassengerName = "   " }},
        {"zero passengers", func(r *IssueRequest) { r.PassengerCount = 0 }},
        {"missing seat", func(r *IssueRequest) { r.SeatNumber = "" }},
        {"unknown class", func(r *IssueRequest) { r.Class = "first_class" }},
        {"bad travel date", func(r *IssueRequest) { r.TravelDate = "01-09-2026" }},
        {"reversed route", func(r *IssueRequest) {
            r.FromStationID, r.ToStationID = "ST-NG", "ST-AK"
        }},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            iss, tickets := newIssuer(now)
            req := validRequest()
            tc.mutate(&req)
            if tc.name == "reversed route" {
                // Reverse the actor's station too so the station gate
                // passes and the route gate is what rejects.
                actor := creatorAkola
                actor.WorkingStation = "Nagpur"
                _, err := iss.IssueTicket(context.Background(), actor, req)
                assertValidationErr(t, err)
            } else {
                _, err := iss.IssueTicket(context.Background(), creatorAkola, req)
                assertValidationErr(t, err)
            }
            if len(tickets.rows) != 0 {
                t.Error("rejected request must not write a ticket")
            }
        })
    }
}

func TestIssueTicketWrongWorkingStation(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC)
    iss, _ := newIssuer(now)

    actor := creatorAkola
    actor.WorkingStation = "Bhusaval"
    _, err := iss.IssueTicket(context.Background(), actor, validRequest())
    assertValidationErr(t, err)
}

func TestIssueTicketTrainNotRunning(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC)
    iss, _ := newIssuer(now)

    req := validRequest()
    req.FromStationID, req.ToStationID = "ST-NG", "ST-BS"
    req.TrainID = "TR-SLOW"
    req.TravelDate = "2026-09-01" // Tuesday; TR-SLOW runs Mondays only
    actor := creatorAkola
    actor.WorkingStation = "Nagpur"
    _, err := iss.IssueTicket(context.Background(), actor, req)
    assertValidationErr(t, err)
}

func TestIssuePlatformTicket(t *testing.T) {
    now := time.Date(2026, 8, 31, 18, 45, 0, 0, time.UTC)
    iss, _ := newIssuer(now)

    tk, err := iss.IssuePlatformTicket(context.Background(), creatorAkola, PlatformIssueRequest{
        PassengerName:  "Visitor",
        PassengerCount: 3,
        Price:          10,
    })
    if err != nil {
        t.Fatal(err)
    }
    if !strings.HasPrefix(tk.TravelID, "PLT-") {
        t.Errorf("platform travel id %q missing PLT prefix", tk.TravelID)
    }
    if !tk.IsPlatform() {
        t.Error("class type must be platform")
    }
    if tk.FromStationID != nil || tk.ToStationID != nil || tk.TrainID != nil {
        t.Error("platform tickets must carry no route references")
    }
    if tk.Kilometres != 0 {
        t.Errorf("kilometres = %v, want 0", tk.Kilometres)
    }
    if tk.TotalPrice != 30 {
        t.Errorf("total = %v, want 30", tk.TotalPrice)
    }
    if !tk.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
        t.Errorf("expires at %v, want issuance + 24h", tk.ExpiresAt)
    }
}

func TestIssuePlatformTicketValidation(t *testing.T) {
    now := time.Date(2026, 8, 31, 18, 45, 0, 0, time.UTC)
    iss, _ := newIssuer(now)
    ctx := context.Background()

    _, err := iss.IssuePlatformTicket(ctx, creatorAkola, PlatformIssueRequest{PassengerName: "", PassengerCount: 1, Price: 10})
    assertValidationErr(t, err)
    _, err = iss.IssuePlatformTicket(ctx, creatorAkola, PlatformIssueRequest{PassengerName: "V", PassengerCount: 1, Price: 0})
    assertValidationErr(t, err)

    noStation := creatorAkola
    noStation.WorkingStation = ""
    _, err = iss.IssuePlatformTicket(ctx, noStation, PlatformIssueRequest{PassengerName: "V", PassengerCount: 1, Price: 10})
    assertValidationErr(t, err)
}

func assertValidationErr(t *testing.T, err error) {
    t.Helper()
    var ve *ValidationError
    if !errors.As(err, &ve) {
        t.Fatalf("got %v, want a validation error", err)
    }
}
