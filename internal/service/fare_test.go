package service

import (
    "context"
    "testing"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func TestResolveSegment(t *testing.T) {
    _, trains := testNetwork()
    halts := trains.halts["TR-EXP"]

    seg, ok := ResolveSegment(halts, "ST-AK", "ST-NG")
    if !ok {
        t.Fatal("expected Akola -> Nagpur to resolve")
    }
    if got := seg.Distance(); got != 370 {
        t.Errorf("distance = %v, want 370", got)
    }

    if _, ok := ResolveSegment(halts, "ST-NG", "ST-AK"); ok {
        t.Error("reversed pair must not resolve")
    }
    if _, ok := ResolveSegment(halts, "ST-AK", "ST-XX"); ok {
        t.Error("unknown destination must not resolve")
    }
    if _, ok := ResolveSegment(halts, "ST-AK", "ST-AK"); ok {
        t.Error("same-station pair must not resolve")
    }
}

func TestFareOptionsUsesOriginThenDefault(t *testing.T) {
    _, trains := testNetwork()
    seg, _ := ResolveSegment(trains.halts["TR-EXP"], "ST-AK", "ST-NG")

    opts := FareOptions(seg.From)
    if len(opts) != len(model.AllClasses) {
        t.Fatalf("got %d options, want %d", len(opts), len(model.AllClasses))
    }
    prices := map[model.TravelClass]float64{}
    for _, o := range opts {
        if o.Price <= 0 {
            t.Errorf("class %s priced at %v, want > 0", o.Class, o.Price)
        }
        prices[o.Class] = o.Price
    }
    // Configured on the origin halt.
    if prices[model.ClassSleeper] != 180 {
        t.Errorf("sleeper = %v, want configured 180", prices[model.ClassSleeper])
    }
    // Not configured anywhere: class default.
    if prices[model.ClassAC1Tier] != model.ClassAC1Tier.DefaultFare() {
        t.Errorf("ac_1_tier = %v, want default %v", prices[model.ClassAC1Tier], model.ClassAC1Tier.DefaultFare())
    }
}

func TestAvailableTrainsFiltersDirectionAndSchedule(t *testing.T) {
    _, trains := testNetwork()
    r := &RouteResolver{Trains: trains}
    ctx := context.Background()

    tuesday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // a Tuesday

    // Bhusaval -> Nagpur: EXP serves it in order every day; SLOW has the
    // stations in the wrong order.
    got, err := r.AvailableTrains(ctx, "ST-BS", "ST-NG", tuesday)
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 1 || got[0].Train.ID != "TR-EXP" {
        t.Fatalf("got %d trains, want only TR-EXP", len(got))
    }
    if got[0].Distance != 250 {
        t.Errorf("distance = %v, want 250", got[0].Distance)
    }

    // Nagpur -> Bhusaval: only SLOW, and only on Mondays.
    got, err = r.AvailableTrains(ctx, "ST-NG", "ST-BS", tuesday)
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 0 {
        t.Fatalf("got %d trains on a Tuesday, want none", len(got))
    }
    monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
    got, err = r.AvailableTrains(ctx, "ST-NG", "ST-BS", monday)
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 1 || got[0].Train.ID != "TR-SLOW" {
        t.Fatalf("want only TR-SLOW on Monday, got %d trains", len(got))
    }
}

func TestRouteDistanceNoConnection(t *testing.T) {
    _, trains := testNetwork()
    r := &RouteResolver{Trains: trains}

    d, err := r.RouteDistance(context.Background(), "ST-AK", "ST-XX")
    if err != nil {
        t.Fatal(err)
    }
    if d != 0 {
        t.Errorf("distance = %v, want 0 for unconnected pair", d)
    }
}
