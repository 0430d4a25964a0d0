package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
)

// ListPeople handles GET /people
func (h *Explorer) ListPeople(c echo.Context) error {
	persons := h.people.List(h.meetings)
	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.People(persons),
		Count: len(persons),
	})
}
