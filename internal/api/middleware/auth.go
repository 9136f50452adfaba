package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/karibu/auth-api/internal/api/metrics"
	"github.com/karibu/auth-api/internal/core/domain"
	"github.com/karibu/auth-api/internal/core/ports"
)

// Auth gates protected routes: it hands the Authorization header to the auth
// service and injects the resolved *domain.User into the request context
// under "user". Requests without a valid, unexpired bearer token never reach
// the wrapped handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := auth.Authenticate(c.Request().Context(), c.Request().Header.Get("Authorization"))
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			c.Set("user", user)
			return next(c)
		}
	}
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid"
	default:
		return "error"
	}
}
