package http

import (
	"net/http"
	"strings"

	"shipments/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// AuthMiddleware parses the Bearer token on protected routes and stores the
// verified claims in the request context. Missing or invalid tokens answer
// 401 before the handler runs.
func AuthMiddleware(tokenProvider ports.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := tokenProvider.Verify(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// AdminMiddleware gates admin routes. Runs after AuthMiddleware and answers
// 403 for authenticated non-admin callers.
func AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := claimsFromContext(ctx)
			if !ok || !claims.IsAdmin {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "admin access required",
				})
			}
			return next(ctx)
		}
	}
}

func claimsFromContext(ctx echo.Context) (ports.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(ports.Claims)
	return claims, ok
}
