package handler

import (
    "testing"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

func TestScopedToStation(t *testing.T) {
    cases := []struct {
        identity string
        station  string
        want     bool
    }{
        {"asha (Akola)", "Akola", true},
        {"ravi (Bhusaval)", "Akola", false},
        // The anchor is the trailing "(Station)": a station name appearing
        // inside the staff name must not match.
        {"Akola Kumar (Bhusaval)", "Akola", false},
        {"admin", "Akola", false},
    }
    for _, tc := range cases {
        if got := scopedToStation(tc.identity, tc.station); got != tc.want {
            t.Errorf("scopedToStation(%q, %q) = %v, want %v", tc.identity, tc.station, got, tc.want)
        }
    }
}

func TestStationScopeFiltering(t *testing.T) {
    tickets := []model.Ticket{
        {TravelID: "AK-10001", CreatedBy: "asha (Akola)"},
        {TravelID: "BS-10002", CreatedBy: "meena (Bhusaval)"},
        {TravelID: "AK-10003", CreatedBy: "sunil (Akola)"},
    }
    got := ticketsForStation(tickets, "Akola")
    if len(got) != 2 || got[0].TravelID != "AK-10001" || got[1].TravelID != "AK-10003" {
        t.Errorf("ticketsForStation = %+v", got)
    }
    if n := len(ticketsForStation(tickets, "Nagpur")); n != 0 {
        t.Errorf("got %d tickets for unrelated station", n)
    }

    logs := []model.VerificationLog{
        {TravelID: "AK-10001", VerifiedBy: "ravi (Bhusaval)"},
        {TravelID: "AK-10003", VerifiedBy: "kiran (Akola)"},
    }
    scoped := logsForStation(logs, "Akola")
    if len(scoped) != 1 || scoped[0].TravelID != "AK-10003" {
        t.Errorf("logsForStation = %+v", scoped)
    }
}

func TestStationSlug(t *testing.T) {
    if got := stationSlug(" New Akola Junction "); got != "New_Akola_Junction" {
        t.Errorf("stationSlug = %q", got)
    }
}
