package model

import "time"

// Staff roles.  Admins are not staff rows; they log in with the bootstrap
// credentials from the environment.
const (
    RoleTicketCreator = "ticket_creator"
    RoleTTE           = "tte"
    RoleAdmin         = "admin"
)

// Staff is a ticket creator or TTE account managed by admins.  StaffID is
// the login handle.  PasswordHash holds a bcrypt hash; the plaintext is
// never stored.  Tickets reference staff by display name, not by foreign
// key, so deleting a staff row never cascades into ticket history.
type Staff struct {
    ID             string    `json:"id"`
    StaffID        string    `json:"staff_id"`
    PasswordHash   string    `json:"-"`
    Name           string    `json:"name"`
    Role           string    `json:"role"`
    IsActive       bool      `json:"is_active"`
    WorkingStation *string   `json:"working_station,omitempty"`
    CreatedAt      time.Time `json:"created_at"`
    UpdatedAt      time.Time `json:"updated_at"`
}

// ActingUser is the identity threaded explicitly through every core
// operation: who is acting, in which role, from which working station.
// It comes from the JWT claims, never from ambient state.
type ActingUser struct {
    ID             string `json:"id"`
    Username       string `json:"username"`
    Role           string `json:"role"`
    WorkingStation string `json:"working_station,omitempty"`
}

// DisplayIdentity renders the creator string recorded on tickets, e.g.
// "asha (Akola)".  Falls back to the bare username without a station.
func (u ActingUser) DisplayIdentity() string {
    if u.WorkingStation == "" {
        return u.Username
    }
    return u.Username + " (" + u.WorkingStation + ")"
}
