package service

import "time"

// ticketValidity is how long a ticket stays usable after its reference
// instant (journey start for standard tickets, issuance for platform).
const ticketValidity = 24 * time.Hour

// StandardExpiry computes when a journey ticket expires: the travel date
// combined with the issuance clock time, plus 24 hours, in UTC.  travelDate
// is "2006-01-02" and createdTime is "15:04"; on a malformed input the zero
// parts simply fall back to midnight / the date alone.
func StandardExpiry(travelDate, createdTime string) time.Time {
    day, err := time.ParseInLocation("2006-01-02", travelDate, time.UTC)
    if err != nil {
        day = time.Now().UTC().Truncate(24 * time.Hour)
    }
    if clock, err := time.Parse("15:04", createdTime); err == nil {
        day = day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
    }
    return day.Add(ticketValidity)
}

// PlatformExpiry computes when a platform ticket expires: 24 hours after
// issuance.
func PlatformExpiry(issuedAt time.Time) time.Time {
    return issuedAt.UTC().Add(ticketValidity)
}

// Expired reports whether a ticket is past its expiry at the given instant.
// A ticket expiring exactly now is still valid.
func Expired(expiresAt, now time.Time) bool {
    return now.After(expiresAt)
}
