package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// ListMeetings handles GET /meetings
func (h *Explorer) ListMeetings(c echo.Context) error {
	var req browse.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	filtered := h.filters.Meetings(h.meetings, filter.MeetingCriteria{
		Workgroup: req.Workgroup,
		StartDate: start,
		EndDate:   end,
		Tags:      textutil.SplitCommaList(req.Tags),
	})

	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.Meetings(filtered),
		Count: len(filtered),
	})
}
