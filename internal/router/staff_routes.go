package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/handler"
    "github.com/iliyamo/railway-ticketing/internal/middleware"
    "github.com/iliyamo/railway-ticketing/internal/model"
)

// RegisterTicketing registers the creator console: train search, seat
// picker, issuance and the ticket browser.  Admins can see everything the
// creators can.
func RegisterTicketing(e *echo.Echo, jwtSecret string, cache echo.MiddlewareFunc,
    th *handler.TicketHandler, ts *handler.TrainSearchHandler, st *handler.StationHandler) {

    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleTicketCreator, model.RoleAdmin),
    )

    // Read-heavy lookups behind the response cache.
    g.GET("/stations", st.List, cache)
    g.GET("/trains/available", ts.Available, cache)
    g.GET("/route/distance", ts.Distance, cache)
    g.GET("/classes/:class/seats", th.Seats, cache)

    g.POST("/tickets", th.Issue)
    g.POST("/tickets/platform", th.IssuePlatform)
    g.GET("/tickets", th.List)
}

// RegisterVerification registers the TTE surface: the two verify
// endpoints, the audit log browser and the outcome stats.  Verification
// is never cached.
func RegisterVerification(e *echo.Echo, jwtSecret string, vh *handler.VerifyHandler) {
    g := e.Group(
        "/v1/verify",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleTTE, model.RoleAdmin),
    )

    g.POST("", vh.Verify)
    g.POST("/platform", vh.VerifyPlatform)
    g.GET("/logs", vh.ListLogs)
    g.GET("/stats", vh.Stats)
    g.GET("/scan", vh.Scan)
}
