package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const queryDateLayout = "2006-01-02"

// bindAndValidate binds query parameters into req and validates it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// invalidRequest renders a 400 with the validation or binding failure.
func invalidRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "invalid_request",
		"message": err.Error(),
	})
}

// dateRange converts validated YYYY-MM-DD query values into inclusive bounds.
// Empty values stay nil, leaving that side of the range open.
func dateRange(startStr, endStr string) (*time.Time, *time.Time) {
	var start, end *time.Time
	if startStr != "" {
		if t, err := time.Parse(queryDateLayout, startStr); err == nil {
			start = &t
		}
	}
	if endStr != "" {
		if t, err := time.Parse(queryDateLayout, endStr); err == nil {
			end = &t
		}
	}
	return start, end
}
