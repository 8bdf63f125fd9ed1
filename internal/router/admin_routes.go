package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/handler"
    "github.com/iliyamo/railway-ticketing/internal/middleware"
    "github.com/iliyamo/railway-ticketing/internal/model"
)

// RegisterAdmin registers the admin-only surface: master data (stations,
// trains, staff), data maintenance, and the report archive.
func RegisterAdmin(e *echo.Echo, jwtSecret string,
    st *handler.StationHandler, tr *handler.TrainHandler, sf *handler.StaffHandler,
    dt *handler.DataHandler, rp *handler.ReportHandler) {

    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    // ---- Stations ----
    g.POST("/stations", st.Create)
    g.GET("/stations", st.List)
    g.GET("/stations/:id", st.Get)
    g.PUT("/stations/:id", st.Update)
    g.DELETE("/stations/:id", st.Delete)

    // ---- Trains ----
    g.POST("/trains", tr.Create)
    g.GET("/trains", tr.List)
    g.GET("/trains/:id", tr.Get)
    g.PUT("/trains/:id", tr.Update)
    g.DELETE("/trains/:id", tr.Delete)

    // ---- Staff ----
    g.POST("/staff", sf.Create)
    g.GET("/staff", sf.List)
    g.GET("/staff/:id", sf.Get)
    g.PUT("/staff/:id", sf.Update)
    g.DELETE("/staff/:id", sf.Delete)

    // ---- Data maintenance ----
    g.DELETE("/data/tickets", dt.PurgeTickets)
    g.DELETE("/data/verification-logs", dt.PurgeLogs)
    g.GET("/data/stats", dt.Stats)

    // ---- Reports ----
    g.POST("/reports/generate", rp.Generate)
    g.GET("/reports", rp.List)
    g.GET("/reports/export/tickets.csv", rp.ExportTicketsCSV)
    g.GET("/reports/export/workbook.xlsx", rp.ExportWorkbook)
}
