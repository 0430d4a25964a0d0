package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the browse API under /v1.
func RegisterRoutes(e *echo.Echo, explorer *Explorer) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/v1")

	v1.GET("/meetings", explorer.ListMeetings)
	v1.GET("/decisions", explorer.ListDecisions)
	v1.GET("/action-items", explorer.ListActionItems)

	v1.GET("/people", explorer.ListPeople)
	v1.GET("/topics", explorer.ListTopics)
	v1.GET("/topics/summary", explorer.ListTopicSummaries)

	v1.GET("/workgroups", explorer.ListWorkgroups)
	v1.GET("/workgroups/:name/meetings", explorer.ListWorkgroupMeetings)

	v1.GET("/graphs/participation", explorer.GetParticipationGraph)
	v1.GET("/graphs/topics", explorer.GetTopicGraph)

	v1.GET("/export/meetings", explorer.ExportMeetings)
	v1.GET("/export/decisions", explorer.ExportDecisions)
	v1.GET("/export/action-items", explorer.ExportActionItems)
}
