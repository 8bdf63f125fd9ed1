package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// StationHandler exposes admin CRUD over stations.
type StationHandler struct {
    Stations *repository.StationRepo
}

func NewStationHandler(s *repository.StationRepo) *StationHandler {
    return &StationHandler{Stations: s}
}

type stationReq struct {
    Name           string  `json:"name"`
    Code           string  `json:"code"`
    Address        *string `json:"address"`
    WorkingStation *string `json:"working_station"`
}

func (h *StationHandler) Create(c echo.Context) error {
    var req stationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
    if req.Name == "" || req.Code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and code are required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    st := &model.Station{
        Name:           req.Name,
        Code:           req.Code,
        Address:        req.Address,
        WorkingStation: req.WorkingStation,
    }
    if err := h.Stations.Create(ctx, st); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusCreated, st)
}

// List returns stations, optionally scoped to one working station via the
// ?working_station= query parameter.
func (h *StationHandler) List(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    stations, err := h.Stations.List(ctx, c.QueryParam("working_station"))
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"stations": stations})
}

func (h *StationHandler) Get(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    st, err := h.Stations.GetByID(ctx, c.Param("id"))
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, st)
}

func (h *StationHandler) Update(c echo.Context) error {
    var req stationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
    if req.Name == "" || req.Code == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and code are required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    st := &model.Station{
        ID:             c.Param("id"),
        Name:           req.Name,
        Code:           req.Code,
        Address:        req.Address,
        WorkingStation: req.WorkingStation,
    }
    if err := h.Stations.Update(ctx, st); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, st)
}

// Delete removes a station.  Stations referenced by train routes answer
// 409 rather than cascading.
func (h *StationHandler) Delete(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Stations.Delete(ctx, c.Param("id")); err != nil {
        return fail(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
