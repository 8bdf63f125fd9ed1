package model

// TravelClass is the closed set of coach classes a ticket can be issued
// for.  The string values match the class_type column and the per-class
// fare columns on train_routes.
type TravelClass string

const (
    ClassGeneral       TravelClass = "general"
    ClassSleeper       TravelClass = "sleeper"
    ClassAC3Tier       TravelClass = "ac_3_tier"
    ClassAC2Tier       TravelClass = "ac_2_tier"
    ClassAC1Tier       TravelClass = "ac_1_tier"
    ClassChairCar      TravelClass = "chair_car"
    ClassSecondSitting TravelClass = "second_sitting"
    ClassAC3Economy    TravelClass = "ac_3_economy"
)

// ClassTypePlatform tags platform-entry tickets in the class_type column.
// It is not a TravelClass: platform tickets carry no coach class.
const ClassTypePlatform = "platform"

// AllClasses lists every travel class in presentation order.
var AllClasses = []TravelClass{
    ClassGeneral,
    ClassSleeper,
    ClassAC3Tier,
    ClassAC2Tier,
    ClassAC1Tier,
    ClassChairCar,
    ClassSecondSitting,
    ClassAC3Economy,
}

// classInfo carries the static attributes of a class: display name, the
// fallback fare used when a halt has no configured price, and the nominal
// coach capacity used to build the seat picker.
type classInfo struct {
    display  string
    defFare  float64
    capacity int
}

var classTable = map[TravelClass]classInfo{
    ClassGeneral:       {"General", 50, 80},
    ClassSleeper:       {"Sleeper", 100, 72},
    ClassAC3Tier:       {"3rd AC", 250, 64},
    ClassAC2Tier:       {"2nd AC", 400, 48},
    ClassAC1Tier:       {"1st AC", 600, 24},
    ClassChairCar:      {"Chair Car", 120, 78},
    ClassSecondSitting: {"2nd Sitting", 40, 108},
    ClassAC3Economy:    {"3rd AC Economy", 200, 83},
}

// Valid reports whether c is a known travel class.
func (c TravelClass) Valid() bool {
    _, ok := classTable[c]
    return ok
}

// DisplayName returns the human-readable class name ("3rd AC" etc.).
// Unknown classes echo their raw value.
func (c TravelClass) DisplayName() string {
    if info, ok := classTable[c]; ok {
        return info.display
    }
    return string(c)
}

// DefaultFare returns the fallback fare offered when a halt carries no
// configured price for this class.  Every class has a non-zero default so
// underspecified routes still price.
func (c TravelClass) DefaultFare() float64 {
    return classTable[c].defFare
}

// SeatCapacity returns the nominal number of seats in a coach of this
// class.  Seats are generated on the fly and never tracked as occupied.
func (c TravelClass) SeatCapacity() int {
    return classTable[c].capacity
}
