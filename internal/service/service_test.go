package service

// In-memory fakes for the store interfaces.  They reproduce the
// repository contracts the lifecycle depends on: sentinel not-found
// errors, the platform/journey lookup split, and an atomic conditional
// MarkVerified.

import (
    "context"
    "strconv"
    "sync"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

type fakeStations struct {
    byID map[string]*model.Station
}

func (f *fakeStations) GetByID(_ context.Context, id string) (*model.Station, error) {
    if s, ok := f.byID[id]; ok {
        return s, nil
    }
    return nil, repository.ErrStationNotFound
}

type fakeTrains struct {
    trains []model.Train
    halts  map[string][]model.RouteHalt
    days   map[string]map[time.Weekday]bool
}

func (f *fakeTrains) TrainsServing(_ context.Context, fromID, toID string) ([]model.Train, error) {
    var out []model.Train
    for _, tr := range f.trains {
        var hasFrom, hasTo bool
        for _, h := range f.halts[tr.ID] {
            if h.StationID == fromID {
                hasFrom = true
            }
            if h.StationID == toID {
                hasTo = true
            }
        }
        if hasFrom && hasTo {
            out = append(out, tr)
        }
    }
    return out, nil
}

func (f *fakeTrains) Halts(_ context.Context, trainID string) ([]model.RouteHalt, error) {
    return f.halts[trainID], nil
}

func (f *fakeTrains) ActiveWeekdays(_ context.Context, trainID string) (map[time.Weekday]bool, error) {
    return f.days[trainID], nil
}

type fakeTickets struct {
    mu      sync.Mutex
    rows    []*model.Ticket
    nextID  int
    failCAS bool // force MarkVerified to report a lost race
}

func (f *fakeTickets) Insert(_ context.Context, t *model.Ticket) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.nextID++
    t.ID = "T" + strconv.Itoa(f.nextID)
    t.CreatedAt = time.Now().UTC()
    cp := *t
    f.rows = append(f.rows, &cp)
    return nil
}

func (f *fakeTickets) GetByTravelID(_ context.Context, travelID string, platformOnly bool) (*model.Ticket, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    for _, t := range f.rows {
        if t.TravelID != travelID {
            continue
        }
        if platformOnly != t.IsPlatform() {
            continue
        }
        cp := *t
        return &cp, nil
    }
    return nil, repository.ErrTicketNotFound
}

func (f *fakeTickets) MarkVerified(_ context.Context, id, verifiedBy string, at time.Time) (bool, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    if f.failCAS {
        return false, nil
    }
    for _, t := range f.rows {
        if t.ID == id && !t.IsVerified {
            t.IsVerified = true
            by := verifiedBy
            when := at
            t.VerifiedBy = &by
            t.VerifiedAt = &when
            return true, nil
        }
    }
    return false, nil
}

type fakeLogs struct {
    mu   sync.Mutex
    rows []model.VerificationLog
}

func (f *fakeLogs) Insert(_ context.Context, l *model.VerificationLog) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.rows = append(f.rows, *l)
    return nil
}

func (f *fakeLogs) all() []model.VerificationLog {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]model.VerificationLog, len(f.rows))
    copy(out, f.rows)
    return out
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

// testNetwork builds a two-train fixture:
//
//	EXP (daily): Akola(0) -> Bhusaval(120) -> Nagpur(370)
//	SLOW (Mon only): Nagpur(0) -> Bhusaval(250)
func testNetwork() (*fakeStations, *fakeTrains) {
    stations := &fakeStations{byID: map[string]*model.Station{
        "ST-AK": {ID: "ST-AK", Name: "Akola", Code: "AK"},
        "ST-BS": {ID: "ST-BS", Name: "Bhusaval", Code: "BS"},
        "ST-NG": {ID: "ST-NG", Name: "Nagpur", Code: "NG"},
    }}
    allDays := map[time.Weekday]bool{}
    for d := time.Sunday; d <= time.Saturday; d++ {
        allDays[d] = true
    }
    trains := &fakeTrains{
        trains: []model.Train{
            {ID: "TR-EXP", Name: "Vidarbha Express", Number: "12105"},
            {ID: "TR-SLOW", Name: "Nagpur Passenger", Number: "51285"},
        },
        halts: map[string][]model.RouteHalt{
            "TR-EXP": {
                {ID: "H1", TrainID: "TR-EXP", StationID: "ST-AK", HaltOrder: 1, DistanceFromStart: 0,
                    DepartureTime: sptr("08:00"), SleeperPrice: fptr(180), AC3TierPrice: fptr(420)},
                {ID: "H2", TrainID: "TR-EXP", StationID: "ST-BS", HaltOrder: 2, DistanceFromStart: 120,
                    ArrivalTime: sptr("09:45"), DepartureTime: sptr("09:50"), SleeperPrice: fptr(120)},
                {ID: "H3", TrainID: "TR-EXP", StationID: "ST-NG", HaltOrder: 3, DistanceFromStart: 370,
                    ArrivalTime: sptr("13:30")},
            },
            "TR-SLOW": {
                {ID: "H4", TrainID: "TR-SLOW", StationID: "ST-NG", HaltOrder: 1, DistanceFromStart: 0},
                {ID: "H5", TrainID: "TR-SLOW", StationID: "ST-BS", HaltOrder: 2, DistanceFromStart: 250},
            },
        },
        days: map[string]map[time.Weekday]bool{
            "TR-EXP":  allDays,
            "TR-SLOW": {time.Monday: true},
        },
    }
    return stations, trains
}

var creatorAkola = model.ActingUser{
    ID:             "U1",
    Username:       "asha",
    Role:           model.RoleTicketCreator,
    WorkingStation: "Akola",
}

var tteRavi = model.ActingUser{
    ID:             "U2",
    Username:       "ravi",
    Role:           model.RoleTTE,
    WorkingStation: "Bhusaval",
}
