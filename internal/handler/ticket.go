package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/queue"
    "github.com/iliyamo/railway-ticketing/internal/repository"
    "github.com/iliyamo/railway-ticketing/internal/service"
)

// TicketHandler covers issuance and browsing of tickets.
type TicketHandler struct {
    Issuer  *service.Issuer
    Tickets *repository.TicketRepo
}

func NewTicketHandler(issuer *service.Issuer, tickets *repository.TicketRepo) *TicketHandler {
    return &TicketHandler{Issuer: issuer, Tickets: tickets}
}

type issueReq struct {
    PassengerName  string   `json:"passenger_name"`
    PassengerCount int      `json:"passenger_count"`
    FromStationID  string   `json:"from_station_id"`
    ToStationID    string   `json:"to_station_id"`
    TrainID        string   `json:"train_id"`
    ClassType      string   `json:"class_type"`
    SeatNumber     string   `json:"seat_number"`
    TravelDate     string   `json:"travel_date"`
    Price          *float64 `json:"price,omitempty"` // per-passenger override of the resolved fare
}

type platformIssueReq struct {
    PassengerName  string  `json:"passenger_name"`
    PassengerCount int     `json:"passenger_count"`
    Price          float64 `json:"price"`
}

// Issue sells a journey ticket.
func (h *TicketHandler) Issue(c echo.Context) error {
    u, ok := actor(c)
    if !ok {
        return unauthenticated(c)
    }
    var req issueReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    t, err := h.Issuer.IssueTicket(ctx, u, service.IssueRequest{
        PassengerName:  req.PassengerName,
        PassengerCount: req.PassengerCount,
        FromStationID:  req.FromStationID,
        ToStationID:    req.ToStationID,
        TrainID:        req.TrainID,
        Class:          model.TravelClass(req.ClassType),
        SeatNumber:     req.SeatNumber,
        TravelDate:     req.TravelDate,
        Price:          req.Price,
    })
    if err != nil {
        return fail(c, err)
    }
    publishIssued(t)
    return c.JSON(http.StatusCreated, t)
}

// IssuePlatform sells a platform-entry ticket.
func (h *TicketHandler) IssuePlatform(c echo.Context) error {
    u, ok := actor(c)
    if !ok {
        return unauthenticated(c)
    }
    var req platformIssueReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    t, err := h.Issuer.IssuePlatformTicket(ctx, u, service.PlatformIssueRequest{
        PassengerName:  req.PassengerName,
        PassengerCount: req.PassengerCount,
        Price:          req.Price,
    })
    if err != nil {
        return fail(c, err)
    }
    publishIssued(t)
    return c.JSON(http.StatusCreated, t)
}

// List returns tickets for an inclusive travel-date range.  Supported
// query parameters: start_date, end_date (default today), class_type
// ("railway", "platform" or a concrete class), and for non-admins the
// results are scoped to the caller's working station.
func (h *TicketHandler) List(c echo.Context) error {
    u, ok := actor(c)
    if !ok {
        return unauthenticated(c)
    }
    today := time.Now().UTC().Format("2006-01-02")
    f := repository.ListFilter{
        StartDate: c.QueryParam("start_date"),
        EndDate:   c.QueryParam("end_date"),
        ClassType: c.QueryParam("class_type"),
    }
    if f.StartDate == "" {
        f.StartDate = today
    }
    if f.EndDate == "" {
        f.EndDate = today
    }
    if u.Role != model.RoleAdmin && u.WorkingStation != "" {
        f.CreatedByLike = "%(" + u.WorkingStation + ")"
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    tickets, err := h.Tickets.ListByDateRange(ctx, f)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"tickets": tickets, "count": len(tickets)})
}

// Seats lists the selectable seat labels for a class.
func (h *TicketHandler) Seats(c echo.Context) error {
    class := model.TravelClass(c.Param("class"))
    if !class.Valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid travel class"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "class_type": class,
        "seats":      service.SeatLabels(class),
    })
}

// publishIssued fires the ticket.issued event off the request path.  The
// sale already committed; a broker outage only costs the log line.
func publishIssued(t *model.Ticket) {
    ev := queue.TicketIssuedEvent{
        TicketID:       t.ID,
        TravelID:       t.TravelID,
        PassengerName:  t.PassengerName,
        PassengerCount: t.PassengerCount,
        ClassType:      t.ClassType,
        TravelDate:     t.TravelDate,
        Kilometres:     t.Kilometres,
        TotalPrice:     t.TotalPrice,
        IssuedBy:       t.CreatedBy,
        IssuedAt:       time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue.PublishTicketIssued(ctx, ev)
    }()
}
