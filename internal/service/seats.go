package service

import (
    "fmt"
    "strings"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// maxSeatLabels caps the seat picker list; classes with larger coaches
// still only offer 50 choices.
const maxSeatLabels = 50

// SeatLabels returns the selectable seat labels for a class, e.g.
// "SLEEPER-1" through "SLEEPER-50".  The label prefix is the class name
// upper-cased, underscores and all ("AC_3_TIER-7"); labels round-trip
// through the ticket's seat_number column, so the shape is load-bearing.
func SeatLabels(class model.TravelClass) []string {
    n := class.SeatCapacity()
    if n > maxSeatLabels {
        n = maxSeatLabels
    }
    prefix := strings.ToUpper(string(class))
    out := make([]string, 0, n)
    for i := 1; i <= n; i++ {
        out = append(out, fmt.Sprintf("%s-%d", prefix, i))
    }
    return out
}
