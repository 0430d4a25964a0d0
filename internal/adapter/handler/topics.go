package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/adapter/presenter"
)

// ListTopics handles GET /topics
func (h *Explorer) ListTopics(c echo.Context) error {
	display := h.topics.Extract(h.meetings)

	normalizedSet := h.topics.ExtractNormalized(h.meetings)
	normalized := make([]string, 0, len(normalizedSet))
	for topic := range normalizedSet {
		normalized = append(normalized, topic)
	}
	sort.Strings(normalized)

	return c.JSON(http.StatusOK, browse.TopicListResponse{
		Topics:     display,
		Normalized: normalized,
	})
}

// ListTopicSummaries handles GET /topics/summary
func (h *Explorer) ListTopicSummaries(c echo.Context) error {
	aggregated := h.topics.Aggregate(h.meetings)
	return c.JSON(http.StatusOK, browse.ListResponse{
		Data:  presenter.Topics(aggregated),
		Count: len(aggregated),
	})
}
