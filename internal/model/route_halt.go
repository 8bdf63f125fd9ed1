package model

import "time"

// RouteHalt is one scheduled stop of a train at a station.  HaltOrder is
// the sole ordering key along the train's path; DistanceFromStart is the
// cumulative distance in kilometres from the origin.  The per-class fare
// fields quote the price to ride from this halt to the end of the line, not
// per segment, so issuance always reads fares off the origin halt.  A nil
// fare means the class has no configured price here and the class default
// applies.
//
// A halt with Duration 0 exists in the route but is excluded from pricing
// and stopping logic by convention.
type RouteHalt struct {
    ID                string    `json:"id"`
    TrainID           string    `json:"train_id"`
    StationID         string    `json:"station_id"`
    HaltOrder         int       `json:"halt_order"`
    DistanceFromStart float64   `json:"distance_from_start"`
    ArrivalTime       *string   `json:"arrival_time,omitempty"`   // "HH:MM" time of day
    DepartureTime     *string   `json:"departure_time,omitempty"` // "HH:MM" time of day
    HaltDuration      int       `json:"halt_duration"`            // minutes
    GeneralPrice      *float64  `json:"general_price,omitempty"`
    SleeperPrice      *float64  `json:"sleeper_price,omitempty"`
    AC3TierPrice      *float64  `json:"ac_3_tier_price,omitempty"`
    AC2TierPrice      *float64  `json:"ac_2_tier_price,omitempty"`
    AC1TierPrice      *float64  `json:"ac_1_tier_price,omitempty"`
    ChairCarPrice     *float64  `json:"chair_car_price,omitempty"`
    SecondSittingPrice *float64 `json:"second_sitting_price,omitempty"`
    AC3EconomyPrice   *float64  `json:"ac_3_economy_price,omitempty"`
    CreatedAt         time.Time `json:"created_at"`
}

// FareFor returns the configured fare for the given class at this halt, or
// nil when the class has no price here.
func (h *RouteHalt) FareFor(class TravelClass) *float64 {
    switch class {
    case ClassGeneral:
        return h.GeneralPrice
    case ClassSleeper:
        return h.SleeperPrice
    case ClassAC3Tier:
        return h.AC3TierPrice
    case ClassAC2Tier:
        return h.AC2TierPrice
    case ClassAC1Tier:
        return h.AC1TierPrice
    case ClassChairCar:
        return h.ChairCarPrice
    case ClassSecondSitting:
        return h.SecondSittingPrice
    case ClassAC3Economy:
        return h.AC3EconomyPrice
    }
    return nil
}
