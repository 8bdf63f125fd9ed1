package service

import (
    "testing"
    "time"
)

func TestStandardExpiry(t *testing.T) {
    exp := StandardExpiry("2026-09-01", "08:30")
    want := time.Date(2026, 9, 2, 8, 30, 0, 0, time.UTC)
    if !exp.Equal(want) {
        t.Errorf("expiry = %v, want %v", exp, want)
    }
}

func TestPlatformExpiry(t *testing.T) {
    issued := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
    exp := PlatformExpiry(issued)
    if !exp.Equal(issued.Add(24 * time.Hour)) {
        t.Errorf("expiry = %v, want issuance+24h", exp)
    }
}

func TestExpiredIsStrict(t *testing.T) {
    at := time.Date(2026, 9, 2, 8, 30, 0, 0, time.UTC)
    if Expired(at, at) {
        t.Error("ticket expiring exactly now must still be valid")
    }
    if !Expired(at, at.Add(time.Second)) {
        t.Error("one second past expiry must be expired")
    }
    if Expired(at, at.Add(-time.Second)) {
        t.Error("one second before expiry must be valid")
    }
}
