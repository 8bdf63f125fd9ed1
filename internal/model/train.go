package model

import "time"

// Train is a scheduled service identified by a name and a number.  Its
// path is described by an ordered list of RouteHalt rows and the weekdays
// it runs on by ScheduleEntry rows.
type Train struct {
    ID             string    `json:"id"`
    Name           string    `json:"name"`
    Number         string    `json:"number"`
    WorkingStation *string   `json:"working_station,omitempty"`
    CreatedAt      time.Time `json:"created_at"`
}

// ScheduleEntry marks one weekday a train runs on.  DayOfWeek follows
// time.Weekday numbering (0 = Sunday).  A train runs on a date iff that
// date's weekday has an entry with IsActive set.
type ScheduleEntry struct {
    ID        string    `json:"id"`
    TrainID   string    `json:"train_id"`
    DayOfWeek int       `json:"day_of_week"`
    IsActive  bool      `json:"is_active"`
    CreatedAt time.Time `json:"created_at"`
}
