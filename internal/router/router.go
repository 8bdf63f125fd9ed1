// Package router wires the HTTP endpoints to their handlers and applies
// the JWT and role middleware per group.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/handler"
    "github.com/iliyamo/railway-ticketing/internal/middleware"
)

// RegisterRoutes registers the unauthenticated endpoints.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers login under /v1/auth and the identity echo under
// the protected /v1 group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    e.POST("/v1/auth/login", a.Login)

    auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}
