package handler

import (
    "testing"
)

func haltAt(station string, order int, km float64) haltReq {
    return haltReq{StationID: station, HaltOrder: order, DistanceFromStart: km}
}

func validTrainReq() trainReq {
    return trainReq{
        Name:   "Akola Express",
        Number: "12405",
        Halts: []haltReq{
            haltAt("ST-BS", 2, 120),
            haltAt("ST-AK", 1, 0),
            haltAt("ST-NG", 3, 370),
        },
        ActiveDays: []int{1, 3, 3, 5},
    }
}

func TestTrainFromRequest(t *testing.T) {
    tr, halts, schedule, msg := trainFromRequest(validTrainReq())
    if msg != "" {
        t.Fatalf("unexpected rejection: %q", msg)
    }
    if tr.Name != "Akola Express" || tr.Number != "12405" {
        t.Errorf("train = %+v", tr)
    }
    // Halts arrive unsorted and must come back in halt order.
    if len(halts) != 3 || halts[0].StationID != "ST-AK" || halts[2].StationID != "ST-NG" {
        t.Errorf("halts = %+v", halts)
    }
    // Duplicate day 3 collapses to one entry.
    if len(schedule) != 3 {
        t.Fatalf("got %d schedule entries, want 3", len(schedule))
    }
    for _, s := range schedule {
        if !s.IsActive {
            t.Errorf("day %d inactive", s.DayOfWeek)
        }
    }
}

func TestTrainFromRequestRejections(t *testing.T) {
    cases := []struct {
        name   string
        mutate func(*trainReq)
        want   string
    }{
        {"blank name", func(r *trainReq) { r.Name = "  " }, "name and number are required"},
        {"single halt", func(r *trainReq) { r.Halts = r.Halts[:1] }, "a route needs at least two halts"},
        {"missing station", func(r *trainReq) { r.Halts[1].StationID = "" }, "every halt needs a station_id"},
        {"duplicate order", func(r *trainReq) { r.Halts[1].HaltOrder = 2 }, "halt orders must be unique positive integers"},
        {"zero order", func(r *trainReq) { r.Halts[1].HaltOrder = 0 }, "halt orders must be unique positive integers"},
        {"repeated station", func(r *trainReq) { r.Halts[1].StationID = "ST-BS" }, "a station can appear only once on a route"},
        {"day out of range", func(r *trainReq) { r.ActiveDays = []int{7} }, "active_days entries must be 0..6"},
        {"no active days", func(r *trainReq) { r.ActiveDays = nil }, "at least one active day is required"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            req := validTrainReq()
            tc.mutate(&req)
            _, _, _, msg := trainFromRequest(req)
            if msg != tc.want {
                t.Errorf("msg = %q, want %q", msg, tc.want)
            }
        })
    }
}
