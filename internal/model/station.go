package model

import "time"

// Station is a physical railway station administered through the admin
// panel.  Stations are scoped to a "working station" network: the
// administrative partition that decides which staff members may see and
// reference them.
//
// Fields:
//  ID             – primary key (UUID).
//  Name           – human name, unique within a network (case-insensitively).
//  Code           – 2–4 letter station code, unique within a network; used
//                   as the travel ID prefix.
//  Address        – optional postal address.
//  WorkingStation – owning network tag (nullable for legacy rows).
//  CreatedAt      – creation timestamp.
type Station struct {
    ID             string    `json:"id"`
    Name           string    `json:"name"`
    Code           string    `json:"code"`
    Address        *string   `json:"address,omitempty"`
    WorkingStation *string   `json:"working_station,omitempty"`
    CreatedAt      time.Time `json:"created_at"`
}
