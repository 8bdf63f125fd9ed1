// Package handler contains the HTTP endpoints.  Handlers bind request
// DTOs, call into repositories and services with a bounded context, and
// translate sentinel errors into status codes.
package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/middleware"
    "github.com/iliyamo/railway-ticketing/internal/model"
    "github.com/iliyamo/railway-ticketing/internal/repository"
    "github.com/iliyamo/railway-ticketing/internal/service"
)

const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request for DB calls.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// actor pulls the authenticated identity out of the context.  Routes
// reaching this are behind JWTAuth, so a miss means a misregistered
// route; callers answer it with 401.
func actor(c echo.Context) (model.ActingUser, bool) {
    return middleware.Actor(c)
}

func unauthenticated(c echo.Context) error {
    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
}

// fail maps service and repository errors onto HTTP responses.  Unmatched
// errors are a 500 with a generic body; details stay in the server log.
func fail(c echo.Context, err error) error {
    var ve *service.ValidationError
    switch {
    case errors.As(err, &ve):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Reason})
    case errors.Is(err, repository.ErrStationNotFound),
        errors.Is(err, repository.ErrTrainNotFound),
        errors.Is(err, repository.ErrTicketNotFound),
        errors.Is(err, repository.ErrStaffNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrStaffIDExists),
        errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    default:
        c.Logger().Errorf("internal error: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}
