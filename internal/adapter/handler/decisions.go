package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
)

// ListDecisions handles GET /decisions
func (h *Explorer) ListDecisions(c echo.Context) error {
	var req browse.ListDecisionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	filtered := h.filters.Decisions(h.aggregates.Decisions(h.meetings), filter.DecisionCriteria{
		Workgroup: req.Workgroup,
		StartDate: start,
		EndDate:   end,
	})

	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.Decisions(filtered),
		Count: len(filtered),
	})
}
