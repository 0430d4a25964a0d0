// Package handler exposes the loaded archive over a read-only HTTP API
// consumed by the dashboard UI.
package handler

import (
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/aggregate"
	"github.com/archivelab/meeting-archive/internal/usecase/export"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/internal/usecase/graph"
	"github.com/archivelab/meeting-archive/internal/usecase/people"
	"github.com/archivelab/meeting-archive/internal/usecase/topics"
	"github.com/archivelab/meeting-archive/internal/usecase/workgroup"
)

// Explorer serves browse requests over the in-memory meeting collection.
// The collection is immutable after load, so handlers are safe to call
// concurrently.
type Explorer struct {
	meetings   []*entities.Meeting
	filters    *filter.Service
	aggregates *aggregate.Service
	people     *people.Extractor
	topics     *topics.Extractor
	graphs     *graph.Builder
	workgroups *workgroup.Service
	exports    *export.Service
	log        *zap.Logger
}

// NewExplorer creates an Explorer over a loaded meeting collection.
func NewExplorer(
	meetings []*entities.Meeting,
	filters *filter.Service,
	aggregates *aggregate.Service,
	peopleExtractor *people.Extractor,
	topicExtractor *topics.Extractor,
	graphBuilder *graph.Builder,
	workgroups *workgroup.Service,
	exports *export.Service,
	log *zap.Logger,
) *Explorer {
	return &Explorer{
		meetings:   meetings,
		filters:    filters,
		aggregates: aggregates,
		people:     peopleExtractor,
		topics:     topicExtractor,
		graphs:     graphBuilder,
		workgroups: workgroups,
		exports:    exports,
		log:        log,
	}
}
