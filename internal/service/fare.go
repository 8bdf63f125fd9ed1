package service

import (
    "context"
    "math"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// RouteSegment is a resolved (origin, destination) pair of halts on one
// train.  It only exists when both halts are present and the origin comes
// strictly before the destination, so a reversed pair never resolves.
type RouteSegment struct {
    From model.RouteHalt
    To   model.RouteHalt
}

// Distance is |destination − origin| along the cumulative
// distance-from-start column.
func (s RouteSegment) Distance() float64 {
    return math.Abs(s.To.DistanceFromStart - s.From.DistanceFromStart)
}

// ResolveSegment finds the origin and destination halts of a train's halt
// list.  The second return is false when either station is missing from
// the route or the ordering is not strictly increasing.
func ResolveSegment(halts []model.RouteHalt, fromStationID, toStationID string) (RouteSegment, bool) {
    var from, to *model.RouteHalt
    for i := range halts {
        switch halts[i].StationID {
        case fromStationID:
            from = &halts[i]
        case toStationID:
            to = &halts[i]
        }
    }
    if from == nil || to == nil || from.HaltOrder >= to.HaltOrder {
        return RouteSegment{}, false
    }
    return RouteSegment{From: *from, To: *to}, true
}

// RunsOn reports whether a train with the given active weekdays runs on
// the date.
func RunsOn(weekdays map[time.Weekday]bool, date time.Time) bool {
    return weekdays[date.Weekday()]
}

// FareOption is one offered class at an origin halt.  Price is the halt's
// configured fare when present, otherwise the class default — never zero,
// so underspecified routes still price.
type FareOption struct {
    Class       model.TravelClass `json:"class_type"`
    DisplayName string            `json:"display_name"`
    Price       float64           `json:"base_price"`
    TotalSeats  int               `json:"total_seats"`
}

// FareOptions builds the class table for an origin halt.  Fares are read
// from the origin halt only — pricing is "price to ride from here", never
// the destination's fields.
func FareOptions(origin model.RouteHalt) []FareOption {
    out := make([]FareOption, 0, len(model.AllClasses))
    for _, c := range model.AllClasses {
        price := c.DefaultFare()
        if p := origin.FareFor(c); p != nil {
            price = *p
        }
        out = append(out, FareOption{
            Class:       c,
            DisplayName: c.DisplayName(),
            Price:       price,
            TotalSeats:  c.SeatCapacity(),
        })
    }
    return out
}

// AvailableTrain is one qualifying train for a (from, to, date) query,
// with the resolved segment and the fare table read off the origin halt.
type AvailableTrain struct {
    Train    model.Train  `json:"train"`
    Segment  RouteSegment `json:"segment"`
    Distance float64      `json:"distance"`
    Fares    []FareOption `json:"fares"`
}

// RouteResolver answers "which trains can carry this journey on this
// date, and at what fares".
type RouteResolver struct {
    Trains TrainStore
}

// AvailableTrains returns every train that serves from→to in that order
// and has an active schedule entry for the date's weekday.  No qualifying
// train is an empty result, not an error.
func (r *RouteResolver) AvailableTrains(ctx context.Context, fromStationID, toStationID string, date time.Time) ([]AvailableTrain, error) {
    trains, err := r.Trains.TrainsServing(ctx, fromStationID, toStationID)
    if err != nil {
        return nil, err
    }
    var out []AvailableTrain
    for _, tr := range trains {
        halts, err := r.Trains.Halts(ctx, tr.ID)
        if err != nil {
            return nil, err
        }
        seg, ok := ResolveSegment(halts, fromStationID, toStationID)
        if !ok {
            continue
        }
        days, err := r.Trains.ActiveWeekdays(ctx, tr.ID)
        if err != nil {
            return nil, err
        }
        if !RunsOn(days, date) {
            continue
        }
        out = append(out, AvailableTrain{
            Train:    tr,
            Segment:  seg,
            Distance: seg.Distance(),
            Fares:    FareOptions(seg.From),
        })
    }
    return out, nil
}

// RouteDistance resolves the distance between two stations using any train
// that serves both in order.  First match wins; there is no reconciliation
// when trains disagree.  Returns 0 when no train connects the pair.
func (r *RouteResolver) RouteDistance(ctx context.Context, fromStationID, toStationID string) (float64, error) {
    trains, err := r.Trains.TrainsServing(ctx, fromStationID, toStationID)
    if err != nil {
        return 0, err
    }
    for _, tr := range trains {
        halts, err := r.Trains.Halts(ctx, tr.ID)
        if err != nil {
            return 0, err
        }
        if seg, ok := ResolveSegment(halts, fromStationID, toStationID); ok {
            if d := seg.Distance(); d > 0 {
                return d, nil
            }
        }
    }
    return 0, nil
}
