package service

import (
    "testing"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func TestSeatLabels(t *testing.T) {
    labels := SeatLabels(model.ClassAC1Tier) // capacity 24, under the cap
    if len(labels) != 24 {
        t.Fatalf("got %d labels, want 24", len(labels))
    }
    if labels[0] != "AC_1_TIER-1" || labels[23] != "AC_1_TIER-24" {
        t.Errorf("labels = %q .. %q", labels[0], labels[23])
    }

    capped := SeatLabels(model.ClassSecondSitting) // capacity 108, capped
    if len(capped) != maxSeatLabels {
        t.Errorf("got %d labels, want cap of %d", len(capped), maxSeatLabels)
    }
    if capped[0] != "SECOND_SITTING-1" {
        t.Errorf("label = %q, underscores must survive", capped[0])
    }
}
