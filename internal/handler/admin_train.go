package handler

import (
    "net/http"
    "sort"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// TrainHandler exposes admin CRUD over trains, their routes and their
// weekly schedules.  A train is created whole: the halts and schedule
// arrive in the same payload and land in one transaction.
type TrainHandler struct {
    Trains *repository.TrainRepo
}

func NewTrainHandler(t *repository.TrainRepo) *TrainHandler {
    return &TrainHandler{Trains: t}
}

type haltReq struct {
    StationID          string   `json:"station_id"`
    HaltOrder          int      `json:"halt_order"`
    DistanceFromStart  float64  `json:"distance_from_start"`
    ArrivalTime        *string  `json:"arrival_time"`
    DepartureTime      *string  `json:"departure_time"`
    HaltDuration       int      `json:"halt_duration"`
    GeneralPrice       *float64 `json:"general_price"`
    SleeperPrice       *float64 `json:"sleeper_price"`
    AC3TierPrice       *float64 `json:"ac_3_tier_price"`
    AC2TierPrice       *float64 `json:"ac_2_tier_price"`
    AC1TierPrice       *float64 `json:"ac_1_tier_price"`
    ChairCarPrice      *float64 `json:"chair_car_price"`
    SecondSittingPrice *float64 `json:"second_sitting_price"`
    AC3EconomyPrice    *float64 `json:"ac_3_economy_price"`
}

type trainReq struct {
    Name           string    `json:"name"`
    Number         string    `json:"number"`
    WorkingStation *string   `json:"working_station"`
    Halts          []haltReq `json:"halts"`
    ActiveDays     []int     `json:"active_days"` // time.Weekday numbering, 0 = Sunday
}

// trainFromRequest validates a train payload and maps it to model rows.
// On rejection the message is non-empty and the rest is nil.  Halts come
// back sorted by halt order, the schedule de-duplicated.
func trainFromRequest(req trainReq) (tr *model.Train, halts []model.RouteHalt, schedule []model.ScheduleEntry, msg string) {
    req.Name = strings.TrimSpace(req.Name)
    req.Number = strings.TrimSpace(req.Number)
    if req.Name == "" || req.Number == "" {
        return nil, nil, nil, "name and number are required"
    }
    if len(req.Halts) < 2 {
        return nil, nil, nil, "a route needs at least two halts"
    }

    halts = make([]model.RouteHalt, 0, len(req.Halts))
    seenOrder := map[int]bool{}
    seenStation := map[string]bool{}
    for _, hr := range req.Halts {
        if hr.StationID == "" {
            return nil, nil, nil, "every halt needs a station_id"
        }
        if hr.HaltOrder < 1 || seenOrder[hr.HaltOrder] {
            return nil, nil, nil, "halt orders must be unique positive integers"
        }
        if seenStation[hr.StationID] {
            return nil, nil, nil, "a station can appear only once on a route"
        }
        seenOrder[hr.HaltOrder] = true
        seenStation[hr.StationID] = true
        halts = append(halts, model.RouteHalt{
            StationID:          hr.StationID,
            HaltOrder:          hr.HaltOrder,
            DistanceFromStart:  hr.DistanceFromStart,
            ArrivalTime:        hr.ArrivalTime,
            DepartureTime:      hr.DepartureTime,
            HaltDuration:       hr.HaltDuration,
            GeneralPrice:       hr.GeneralPrice,
            SleeperPrice:       hr.SleeperPrice,
            AC3TierPrice:       hr.AC3TierPrice,
            AC2TierPrice:       hr.AC2TierPrice,
            AC1TierPrice:       hr.AC1TierPrice,
            ChairCarPrice:      hr.ChairCarPrice,
            SecondSittingPrice: hr.SecondSittingPrice,
            AC3EconomyPrice:    hr.AC3EconomyPrice,
        })
    }
    sort.Slice(halts, func(i, j int) bool { return halts[i].HaltOrder < halts[j].HaltOrder })

    schedule = make([]model.ScheduleEntry, 0, len(req.ActiveDays))
    seenDay := map[int]bool{}
    for _, d := range req.ActiveDays {
        if d < 0 || d > 6 {
            return nil, nil, nil, "active_days entries must be 0..6"
        }
        if seenDay[d] {
            continue
        }
        seenDay[d] = true
        schedule = append(schedule, model.ScheduleEntry{DayOfWeek: d, IsActive: true})
    }
    if len(schedule) == 0 {
        return nil, nil, nil, "at least one active day is required"
    }

    tr = &model.Train{Name: req.Name, Number: req.Number, WorkingStation: req.WorkingStation}
    return tr, halts, schedule, ""
}

func (h *TrainHandler) Create(c echo.Context) error {
    var req trainReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    tr, halts, schedule, msg := trainFromRequest(req)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Trains.Create(ctx, tr, halts, schedule); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "train":    tr,
        "halts":    halts,
        "schedule": schedule,
    })
}

// Update rewrites a train's fields, route and schedule under the same
// train ID, so already-issued tickets keep pointing at the train.  The
// payload shape matches Create: halts and schedule replace the current
// ones wholesale.
func (h *TrainHandler) Update(c echo.Context) error {
    var req trainReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    tr, halts, schedule, msg := trainFromRequest(req)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    tr.ID = c.Param("id")

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Trains.Update(ctx, tr, halts, schedule); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "train":    tr,
        "halts":    halts,
        "schedule": schedule,
    })
}

func (h *TrainHandler) List(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    trains, err := h.Trains.List(ctx, c.QueryParam("working_station"))
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"trains": trains})
}

// Get returns a train with its full route and schedule.
func (h *TrainHandler) Get(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    id := c.Param("id")
    tr, err := h.Trains.GetByID(ctx, id)
    if err != nil {
        return fail(c, err)
    }
    halts, err := h.Trains.Halts(ctx, id)
    if err != nil {
        return fail(c, err)
    }
    schedule, err := h.Trains.Schedule(ctx, id)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "train":    tr,
        "halts":    halts,
        "schedule": schedule,
    })
}

// Delete removes a train together with its route and schedule rows.
// Sold tickets keep their snapshot columns, so history survives.
func (h *TrainHandler) Delete(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Trains.Delete(ctx, c.Param("id")); err != nil {
        return fail(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
