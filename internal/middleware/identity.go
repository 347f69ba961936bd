package middleware

// identity.go holds helpers shared across middleware files. requestUser
// extracts a stable identifier for the current request, used to key rate
// limit buckets; unauthenticated requests share the "guest" identity and
// are keyed by client IP instead.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// requestUser returns the authenticated user id as a string, or "guest"
// when the request carries no identity.
func requestUser(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "guest"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	}
	return "guest"
}
