package handler

import (
    "crypto/subtle"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/config"
    "github.com/iliyamo/railway-ticketing/internal/repository"
    "github.com/iliyamo/railway-ticketing/internal/utils"
)

// AuthHandler authenticates staff and the bootstrap admin.  Staff log in
// with their staff ID, password, and the role they claim; the admin
// account lives only in configuration, never in the staff table.
type AuthHandler struct {
    Cfg   config.Config
    Staff *repository.StaffRepo
}

func NewAuthHandler(cfg config.Config, staff *repository.StaffRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Staff: staff}
}

type loginReq struct {
    StaffID  string `json:"staff_id"`
    Password string `json:"password"`
    Role     string `json:"role"` // admin | ticket_creator | tte
}

type loginResp struct {
    Token          string    `json:"token"`
    Expires        time.Time `json:"expires"`
    UserID         string    `json:"user_id"`
    Name           string    `json:"name"`
    Role           string    `json:"role"`
    WorkingStation string    `json:"working_station,omitempty"`
}

// Login validates credentials for the claimed role and returns a signed
// access token.  A wrong role with the right password still fails: a TTE
// cannot log into the creator console.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.StaffID = strings.TrimSpace(req.StaffID)
    req.Role = strings.TrimSpace(strings.ToLower(req.Role))
    if req.StaffID == "" || req.Password == "" || req.Role == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "staff_id, password and role are required"})
    }

    if req.Role == "admin" {
        return h.adminLogin(c, req)
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    st, err := h.Staff.GetByStaffID(ctx, req.StaffID, req.Role)
    if err != nil {
        // Not-found and bad-password answer identically.
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    if !utils.VerifyPassword(st.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    station := ""
    if st.WorkingStation != nil {
        station = *st.WorkingStation
    }
    tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, st.ID, st.Name, st.Role, station, h.Cfg.AccessTTLMin)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, loginResp{
        Token:          tok.Token,
        Expires:        tok.Exp,
        UserID:         st.ID,
        Name:           st.Name,
        Role:           st.Role,
        WorkingStation: station,
    })
}

func (h *AuthHandler) adminLogin(c echo.Context, req loginReq) error {
    userOK := subtle.ConstantTimeCompare([]byte(req.StaffID), []byte(h.Cfg.AdminUser)) == 1
    passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Cfg.AdminPass)) == 1
    if !userOK || !passOK {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, "admin", h.Cfg.AdminUser, "admin", "", h.Cfg.AccessTTLMin)
    if err != nil {
        return fail(c, err)
    }
    return c.JSON(http.StatusOK, loginResp{
        Token:   tok.Token,
        Expires: tok.Exp,
        UserID:  "admin",
        Name:    h.Cfg.AdminUser,
        Role:    "admin",
    })
}

// Me echoes the authenticated identity back, which the UI uses to render
// the logged-in header without decoding the JWT itself.
func (h *AuthHandler) Me(c echo.Context) error {
    u, ok := actor(c)
    if !ok {
        return unauthenticated(c)
    }
    return c.JSON(http.StatusOK, u)
}
