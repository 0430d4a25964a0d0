package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/archivelab/meeting-archive/errors"
	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
)

// ListWorkgroups handles GET /workgroups
func (h *Explorer) ListWorkgroups(c echo.Context) error {
	workgroups := h.workgroups.All()
	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.Workgroups(workgroups),
		Count: len(workgroups),
	})
}

// ListWorkgroupMeetings handles GET /workgroups/:name/meetings
func (h *Explorer) ListWorkgroupMeetings(c echo.Context) error {
	var req browse.WorkgroupMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	meetings := h.workgroups.MeetingsByWorkgroup(c.Param("name"), req.Sort)
	// Workgroups only exist through their meetings, so an empty result means
	// the name is unknown.
	if len(meetings) == 0 {
		appErr := apperrors.ErrNotFound("workgroup")
		return c.JSON(appErr.HTTPCode, map[string]interface{}{
			"error":   "not_found",
			"message": appErr.Message,
		})
	}
	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.Meetings(meetings),
		Count: len(meetings),
	})
}
