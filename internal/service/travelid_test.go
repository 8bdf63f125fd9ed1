package service

import (
    "regexp"
    "strconv"
    "strings"
    "testing"
    "time"
)

func TestNewTravelIDFormat(t *testing.T) {
    re := regexp.MustCompile(`^AK-\d{5}$`)
    for i := 0; i < 200; i++ {
        id := NewTravelID("AK")
        if !re.MatchString(id) {
            t.Fatalf("travel id %q does not match CODE-NNNNN", id)
        }
    }
}

func TestNewTravelIDFallbackCode(t *testing.T) {
    id := NewTravelID("")
    if !strings.HasPrefix(id, "GN-") {
        t.Errorf("travel id %q should fall back to GN prefix", id)
    }
}

func TestNewPlatformTravelID(t *testing.T) {
    now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
    re := regexp.MustCompile(`^PLT-\d+-\d{1,3}$`)
    id := NewPlatformTravelID(now)
    if !re.MatchString(id) {
        t.Fatalf("platform id %q does not match PLT-<ms>-<n>", id)
    }
    want := "PLT-" + strconv.FormatInt(now.UnixMilli(), 10) + "-"
    if !strings.HasPrefix(id, want) {
        t.Errorf("platform id %q does not embed the issuance millis %q", id, want)
    }
}
