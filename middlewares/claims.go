package middlewares

import "github.com/labstack/echo/v4"

// Typed accessors for the claims stashed by RequireAuth.

func UserID(c echo.Context) uint {
	v, _ := c.Get("user_id").(uint)
	return v
}

func OrgID(c echo.Context) uint {
	v, _ := c.Get("org_id").(uint)
	return v
}

func Role(c echo.Context) string {
	v, _ := c.Get("role").(string)
	return v
}
