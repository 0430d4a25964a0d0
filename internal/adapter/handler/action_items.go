package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
)

// ListActionItems handles GET /action-items
func (h *Explorer) ListActionItems(c echo.Context) error {
	var req browse.ListActionItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	filtered := h.filters.ActionItems(h.aggregates.ActionItems(h.meetings), filter.ActionItemCriteria{
		Workgroup: req.Workgroup,
		Assignee:  req.Assignee,
		Status:    req.Status,
		StartDate: start,
		EndDate:   end,
	})

	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.ActionItems(filtered),
		Count: len(filtered),
	})
}
