package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// DataHandler covers the admin data-maintenance surface: purging old
// tickets and audit rows by date, and the dashboard stats block.
type DataHandler struct {
    Tickets *repository.TicketRepo
    Logs    *repository.VerificationLogRepo
}

func NewDataHandler(t *repository.TicketRepo, l *repository.VerificationLogRepo) *DataHandler {
    return &DataHandler{Tickets: t, Logs: l}
}

// PurgeTickets deletes every ticket with the given travel date.  The
// date is required; there is deliberately no "purge everything" call.
func (h *DataHandler) PurgeTickets(c echo.Context) error {
    date := c.QueryParam("date")
    if !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    n, err := h.Tickets.DeleteByTravelDate(ctx, date)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"deleted": n, "date": date})
}

// PurgeLogs deletes verification audit rows from the given date.
func (h *DataHandler) PurgeLogs(c echo.Context) error {
    date := c.QueryParam("date")
    if !validDate(date) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    n, err := h.Logs.DeleteByDate(ctx, date)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"deleted": n, "date": date})
}

// Stats feeds the admin dashboard: total tickets plus verification
// outcome counts.
func (h *DataHandler) Stats(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    total, err := h.Tickets.Count(ctx)
    if err != nil {
        return fail(c, err)
    }
    byStatus, err := h.Logs.CountByStatus(ctx)
    if err != nil {
        return fail(c, err)
    }
    fraud, err := h.Logs.CountFraud(ctx)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "total_tickets":  total,
        "verifications":  byStatus,
        "fraud_attempts": fraud,
    })
}

func validDate(s string) bool {
    _, err := time.Parse("2006-01-02", s)
    return err == nil
}
