package httpserver

import (
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smolenkov/listshare/internal/server/store"
)

// userContextKey is where resolveToken stores the authenticated user on
// the echo context. Absent means the request is anonymous.
const userContextKey = "authUser"

// currentUser returns the authenticated user, or nil for anonymous
// requests.
func currentUser(c echo.Context) *store.User {
	user, _ := c.Get(userContextKey).(*store.User)
	return user
}

// resolveToken turns a bearer Authorization header into a user on the
// context. Requests without the header pass through anonymously; a
// malformed header or an unknown token is rejected outright.
func (s *HTTPServer) resolveToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		user, err := s.store.ResolveToken(c.Request().Context(), parts[1])
		if err != nil {
			return err
		}
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// requireAuth guards routes that only make sense for an authenticated
// caller.
func (s *HTTPServer) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

// requestLogger logs one structured line per request, tagged with a
// fresh request ID that is also echoed back to the client.
func (s *HTTPServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.NewString()
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info(c.Request().Context(), "request",
			"request_id", requestID,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start).String(),
		)
		return err
	}
}

// slowMode delays every request by a random duration in [min, max).
// A development aid for exercising client loading states.
func slowMode(min, max time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			delay := min
			if max > min {
				delay += time.Duration(rand.Int63n(int64(max - min)))
			}
			time.Sleep(delay)
			return next(c)
		}
	}
}
