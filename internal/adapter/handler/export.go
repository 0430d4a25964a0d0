package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// ExportMeetings handles GET /export/meetings
func (h *Explorer) ExportMeetings(c echo.Context) error {
	var req browse.ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	meetings := h.filters.Meetings(h.meetings, filter.MeetingCriteria{
		Workgroup: req.Workgroup,
		StartDate: start,
		EndDate:   end,
		Tags:      textutil.SplitCommaList(c.QueryParam("tags")),
	})

	switch req.Format {
	case "csv":
		data, err := h.exports.MeetingsCSV(meetings)
		if err != nil {
			return err
		}
		return download(c, "meetings.csv", "text/csv", data)
	case "json":
		data, err := h.exports.MeetingsJSON(meetings)
		if err != nil {
			return err
		}
		return download(c, "meetings.json", echo.MIMEApplicationJSON, data)
	default:
		return download(c, "meetings.txt", echo.MIMETextPlain, []byte(h.exports.MeetingsPlainText(meetings)))
	}
}

// ExportDecisions handles GET /export/decisions
func (h *Explorer) ExportDecisions(c echo.Context) error {
	var req browse.ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	decisions := h.filters.Decisions(h.aggregates.Decisions(h.meetings), filter.DecisionCriteria{
		Workgroup: req.Workgroup,
		StartDate: start,
		EndDate:   end,
	})

	switch req.Format {
	case "csv":
		data, err := h.exports.DecisionsCSV(decisions)
		if err != nil {
			return err
		}
		return download(c, "decisions.csv", "text/csv", data)
	case "json":
		data, err := h.exports.DecisionsJSON(decisions)
		if err != nil {
			return err
		}
		return download(c, "decisions.json", echo.MIMEApplicationJSON, data)
	default:
		return download(c, "decisions.txt", echo.MIMETextPlain, []byte(h.exports.DecisionsPlainText(decisions)))
	}
}

// ExportActionItems handles GET /export/action-items
func (h *Explorer) ExportActionItems(c echo.Context) error {
	var req browse.ExportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return invalidRequest(c, err)
	}

	start, end := dateRange(req.StartDate, req.EndDate)
	items := h.filters.ActionItems(h.aggregates.ActionItems(h.meetings), filter.ActionItemCriteria{
		Workgroup: req.Workgroup,
		Assignee:  req.Assignee,
		Status:    req.Status,
		StartDate: start,
		EndDate:   end,
	})

	switch req.Format {
	case "csv":
		data, err := h.exports.ActionItemsCSV(items)
		if err != nil {
			return err
		}
		return download(c, "action_items.csv", "text/csv", data)
	case "json":
		data, err := h.exports.ActionItemsJSON(items)
		if err != nil {
			return err
		}
		return download(c, "action_items.json", echo.MIMEApplicationJSON, data)
	default:
		return download(c, "action_items.txt", echo.MIMETextPlain, []byte(h.exports.ActionItemsPlainText(items)))
	}
}

func download(c echo.Context, filename, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}
