package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/service"
)

// TrainSearchHandler answers the creator console's "which trains, what
// fares" query that precedes every sale.
type TrainSearchHandler struct {
    Resolver *service.RouteResolver
}

func NewTrainSearchHandler(r *service.RouteResolver) *TrainSearchHandler {
    return &TrainSearchHandler{Resolver: r}
}

// Available lists trains serving from→to on a date, each with the
// resolved segment, distance and per-class fares read off the origin
// halt.  Query parameters: from_station_id, to_station_id, date
// (YYYY-MM-DD, default today).
func (h *TrainSearchHandler) Available(c echo.Context) error {
    fromID := c.QueryParam("from_station_id")
    toID := c.QueryParam("to_station_id")
    if fromID == "" || toID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from_station_id and to_station_id are required"})
    }
    dateStr := c.QueryParam("date")
    date := time.Now().UTC()
    if dateStr != "" {
        parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
        }
        date = parsed
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    trains, err := h.Resolver.AvailableTrains(ctx, fromID, toID, date)
    if err != nil {
        return fail(c, err)
    }
    if trains == nil {
        trains = []service.AvailableTrain{}
    }
    return c.JSON(http.StatusOK, echo.Map{"trains": trains, "count": len(trains)})
}

// Distance resolves the route distance between two stations.  Answers 0
// when no train connects them, mirroring how issuance treats the pair.
func (h *TrainSearchHandler) Distance(c echo.Context) error {
    fromID := c.QueryParam("from_station_id")
    toID := c.QueryParam("to_station_id")
    if fromID == "" || toID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "from_station_id and to_station_id are required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    d, err := h.Resolver.RouteDistance(ctx, fromID, toID)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"distance": d})
}
