package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/config"
    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
)

// StaffHandler lets admins manage ticket creator and TTE accounts.
type StaffHandler struct {
    Cfg   config.Config
    Staff *repository.StaffRepo
}

func NewStaffHandler(cfg config.Config, s *repository.StaffRepo) *StaffHandler {
    return &StaffHandler{Cfg: cfg, Staff: s}
}

type staffReq struct {
    StaffID        string  `json:"staff_id"`
    Password       string  `json:"password"`
    Name           string  `json:"name"`
    Role           string  `json:"role"` // ticket_creator | tte
    IsActive       *bool   `json:"is_active"`
    WorkingStation *string `json:"working_station"`
}

func validStaffRole(role string) bool {
    return role == model.RoleTicketCreator || role == model.RoleTTE
}

func (h *StaffHandler) Create(c echo.Context) error {
    var req staffReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.StaffID = strings.TrimSpace(req.StaffID)
    req.Name = strings.TrimSpace(req.Name)
    req.Role = strings.ToLower(strings.TrimSpace(req.Role))
    if req.StaffID == "" || req.Password == "" || req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "staff_id, password and name are required"})
    }
    if !validStaffRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be ticket_creator or tte"})
    }
    if req.WorkingStation == nil || strings.TrimSpace(*req.WorkingStation) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "working_station is required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    st := &model.Staff{
        StaffID:        req.StaffID,
        Name:           req.Name,
        Role:           req.Role,
        IsActive:       true,
        WorkingStation: req.WorkingStation,
    }
    if req.IsActive != nil {
        st.IsActive = *req.IsActive
    }
    if err := h.Staff.Create(ctx, st, req.Password, h.Cfg.BcryptCost); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusCreated, st)
}

func (h *StaffHandler) List(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    staff, err := h.Staff.List(ctx, c.QueryParam("working_station"))
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"staff": staff})
}

func (h *StaffHandler) Get(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    st, err := h.Staff.GetByID(ctx, c.Param("id"))
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, st)
}

// Update rewrites a staff row.  An empty password keeps the stored hash.
func (h *StaffHandler) Update(c echo.Context) error {
    var req staffReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Role = strings.ToLower(strings.TrimSpace(req.Role))
    if req.Name == "" || !validStaffRole(req.Role) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and a valid role are required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    st, err := h.Staff.GetByID(ctx, c.Param("id"))
    if err != nil {
        return fail(c, err)
    }
    st.Name = req.Name
    st.Role = req.Role
    st.WorkingStation = req.WorkingStation
    if req.IsActive != nil {
        st.IsActive = *req.IsActive
    }
    if err := h.Staff.Update(ctx, st, req.Password, h.Cfg.BcryptCost); err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, st)
}

func (h *StaffHandler) Delete(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Staff.Delete(ctx, c.Param("id")); err != nil {
        return fail(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
