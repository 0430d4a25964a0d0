// Package aggregate flattens per-meeting decision and action item lists into
// global collections, preserving the denormalized parent-meeting context.
package aggregate

import (
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

// Service aggregates nested entities across a meeting collection.
type Service struct {
	log *zap.Logger
}

// NewService constructs an aggregation Service with the given logging sink.
func NewService(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Decisions concatenates every meeting's decisions in meeting-array order,
// then item order within each meeting. No re-stamping happens; each decision
// keeps the workgroup and date copied from its parent at creation time.
func (s *Service) Decisions(meetings []*entities.Meeting) []*entities.Decision {
	out := make([]*entities.Decision, 0)
	for _, meeting := range meetings {
		out = append(out, meeting.Decisions...)
	}

	s.log.Debug("aggregated decisions",
		zap.Int("meetings", len(meetings)),
		zap.Int("decisions", len(out)),
	)
	return out
}

// ActionItems concatenates every meeting's action items in meeting-array
// order, then item order within each meeting.
func (s *Service) ActionItems(meetings []*entities.Meeting) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0)
	for _, meeting := range meetings {
		out = append(out, meeting.ActionItems...)
	}

	s.log.Debug("aggregated action items",
		zap.Int("meetings", len(meetings)),
		zap.Int("action_items", len(out)),
	)
	return out
}
