// Package filter implements predicate-based selection over meetings,
// decisions and action items. All criteria combine with AND semantics; an
// omitted criterion passes everything, and input order is preserved.
package filter

import (
	"time"

	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// MeetingCriteria selects meetings. Date bounds are inclusive; tags match
// case-insensitively against the meeting's topic list with OR semantics
// within the tag list.
type MeetingCriteria struct {
	Workgroup string
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
}

// DecisionCriteria selects decisions.
type DecisionCriteria struct {
	Workgroup string
	StartDate *time.Time
	EndDate   *time.Time
}

// ActionItemCriteria selects action items. Status is matched against the
// already-canonical form.
type ActionItemCriteria struct {
	Workgroup string
	Assignee  string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Service filters entity collections. Every method is a pure selection over
// its input and returns an empty slice, never an error, when nothing matches.
type Service struct {
	log *zap.Logger
}

// NewService constructs a filter Service with the given logging sink.
func NewService(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Meetings filters a meeting collection by workgroup, date range and tags.
func (s *Service) Meetings(meetings []*entities.Meeting, c MeetingCriteria) []*entities.Meeting {
	queryTags := textutil.NormalizeTopics(c.Tags)

	out := make([]*entities.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if c.Workgroup != "" && m.Workgroup != c.Workgroup {
			continue
		}
		if !inRange(m.Date, c.StartDate, c.EndDate) {
			continue
		}
		if len(queryTags) > 0 && !hasMatchingTag(m.TopicsCovered, queryTags) {
			continue
		}
		out = append(out, m)
	}

	s.log.Debug("filtered meetings",
		zap.Int("in", len(meetings)),
		zap.Int("out", len(out)),
		zap.String("workgroup", c.Workgroup),
		zap.Int("tags", len(c.Tags)),
	)
	return out
}

// Decisions filters a decision collection by workgroup and date range.
func (s *Service) Decisions(decisions []*entities.Decision, c DecisionCriteria) []*entities.Decision {
	out := make([]*entities.Decision, 0, len(decisions))
	for _, d := range decisions {
		if c.Workgroup != "" && d.Workgroup != c.Workgroup {
			continue
		}
		if !inRange(d.Date, c.StartDate, c.EndDate) {
			continue
		}
		out = append(out, d)
	}

	s.log.Debug("filtered decisions",
		zap.Int("in", len(decisions)),
		zap.Int("out", len(out)),
		zap.String("workgroup", c.Workgroup),
	)
	return out
}

// ActionItems filters an action item collection by workgroup, assignee,
// status and date range.
func (s *Service) ActionItems(items []*entities.ActionItem, c ActionItemCriteria) []*entities.ActionItem {
	out := make([]*entities.ActionItem, 0, len(items))
	for _, item := range items {
		if c.Workgroup != "" && item.Workgroup != c.Workgroup {
			continue
		}
		if c.Assignee != "" && item.Assignee != c.Assignee {
			continue
		}
		if c.Status != "" && item.Status != c.Status {
			continue
		}
		if !inRange(item.Date, c.StartDate, c.EndDate) {
			continue
		}
		out = append(out, item)
	}

	s.log.Debug("filtered action items",
		zap.Int("in", len(items)),
		zap.Int("out", len(out)),
		zap.String("workgroup", c.Workgroup),
		zap.String("assignee", c.Assignee),
		zap.String("status", c.Status),
	)
	return out
}

// inRange reports whether t falls within [start, end], both bounds inclusive
// and independently omittable.
func inRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

// hasMatchingTag reports whether any normalized query tag appears in the
// normalized topic list.
func hasMatchingTag(topics, queryTags []string) bool {
	normalized := make(map[string]struct{}, len(topics))
	for _, topic := range textutil.NormalizeTopics(topics) {
		normalized[topic] = struct{}{}
	}
	for _, tag := range queryTags {
		if _, ok := normalized[tag]; ok {
			return true
		}
	}
	return false
}
