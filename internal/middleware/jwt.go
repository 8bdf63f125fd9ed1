package middleware

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// actorKey is the context key the authenticated identity is stored under.
const actorKey = "actor"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the acting user into the request context.  The claims carry
// the full identity (subject, display name, role, working station) so
// handlers never reload the staff row per request.  Use Actor(c) to read
// it back out.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            actor := model.ActingUser{
                ID:             claimStr(claims, "sub"),
                Username:       claimStr(claims, "name"),
                Role:           claimStr(claims, "role"),
                WorkingStation: claimStr(claims, "station"),
            }
            if actor.ID == "" || actor.Role == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }
            c.Set(actorKey, actor)
            // Plain keys kept for the rate limiter key builder and role gate.
            c.Set("user_id", actor.ID)
            c.Set("role", actor.Role)
            return next(c)
        }
    }
}

func claimStr(claims jwt.MapClaims, key string) string {
    if v, ok := claims[key].(string); ok {
        return v
    }
    return ""
}
