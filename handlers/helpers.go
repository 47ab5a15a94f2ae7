package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/leave"
)

// atoiOr converts s to int, falling back to def.
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// pageSize reads ?page= and ?size= with sane bounds.
func pageSize(c echo.Context) (page, size int) {
	page = atoiOr(c.QueryParam("page"), 1)
	size = atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	} else if size > 100 {
		size = 100
	}
	return page, size
}

// leaveError maps the leave package's error taxonomy to an HTTP reply.
func leaveError(c echo.Context, err error) error {
	var ve *leave.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error": "VALIDATION_ERROR", "field": ve.Field, "message": ve.Msg,
		})
	case errors.Is(err, leave.ErrInsufficientBalance):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": "INSUFFICIENT_BALANCE"})
	case errors.Is(err, leave.ErrInvalidState):
		return c.JSON(http.StatusConflict, map[string]any{"error": "INVALID_STATE"})
	case errors.Is(err, leave.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
}
