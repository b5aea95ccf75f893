package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

// BearerToken moves the caller's bearer token onto the request context, where
// the backend client picks it up. With required set, requests without a token
// are rejected with 401.
func BearerToken(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerFromHeader(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				if required {
					return ctx.JSON(http.StatusUnauthorized, &types.ErrorResponse{Error: "missing bearer token"})
				}
				return next(ctx)
			}

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(backend.WithToken(req.Context(), token)))
			return next(ctx)
		}
	}
}

func bearerFromHeader(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
