package middleware

// identity.go holds the helpers other middleware and handlers use to read
// the authenticated identity back out of the Echo context.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// Actor returns the acting user stored by JWTAuth.  The second return is
// false on unauthenticated routes.
func Actor(c echo.Context) (model.ActingUser, bool) {
    v := c.Get(actorKey)
    if v == nil {
        return model.ActingUser{}, false
    }
    u, ok := v.(model.ActingUser)
    return u, ok
}

// currentUserID extracts the user identifier for rate-limit key building.
// Returns "anon" on unauthenticated routes such as login.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok && s != "" {
            return s
        }
    }
    return "anon"
}
