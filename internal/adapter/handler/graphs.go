package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
)

// GetParticipationGraph handles GET /graphs/participation
func (h *Explorer) GetParticipationGraph(c echo.Context) error {
	var req browse.GraphRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	meetings := h.graphMeetings(req)
	g := h.graphs.BuildParticipationGraph(meetings)
	return c.JSON(http.StatusOK, presenter.Graph(g))
}

// GetTopicGraph handles GET /graphs/topics
func (h *Explorer) GetTopicGraph(c echo.Context) error {
	var req browse.GraphRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	meetings := h.graphMeetings(req)
	g := h.graphs.BuildTopicGraph(meetings)
	return c.JSON(http.StatusOK, presenter.Graph(g))
}

// graphMeetings narrows the source collection before a graph build. Filtering
// always happens against the meetings, never against a built graph, so a
// filtered graph matches a fresh build over the filtered collection.
func (h *Explorer) graphMeetings(req browse.GraphRequest) []*entities.Meeting {
	start, end := dateRange(req.StartDate, req.EndDate)
	return h.filters.Meetings(h.meetings, filter.MeetingCriteria{
		Workgroup: req.Workgroup,
		StartDate: start,
		EndDate:   end,
	})
}
