package service

import (
    "fmt"
    "math/rand"
    "time"
)

// FallbackStationCode prefixes travel IDs when the origin station's code
// cannot be resolved.
const FallbackStationCode = "GN"

// NewTravelID builds a standard travel ID: station code, dash, random
// five-digit number in [10000, 99999].  IDs are human readable and NOT
// collision-checked against existing tickets; uniqueness is probabilistic.
func NewTravelID(stationCode string) string {
    if stationCode == "" {
        stationCode = FallbackStationCode
    }
    return fmt.Sprintf("%s-%d", stationCode, 10000+rand.Intn(90000))
}

// NewPlatformTravelID builds a platform ticket ID from the issuance
// instant: "PLT-<unix ms>-<0..999>".  The PLT prefix keeps the platform
// namespace disjoint from station codes.
func NewPlatformTravelID(now time.Time) string {
    return fmt.Sprintf("PLT-%d-%d", now.UnixMilli(), rand.Intn(1000))
}
