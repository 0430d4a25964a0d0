package graph

import (
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/internal/usecase/people"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// Builder constructs relationship graphs from a meeting collection.
type Builder struct {
	people  *people.Extractor
	filters *filter.Service
	log     *zap.Logger
}

// NewBuilder constructs a Builder.
func NewBuilder(peopleExtractor *people.Extractor, filters *filter.Service, log *zap.Logger) *Builder {
	return &Builder{people: peopleExtractor, filters: filters, log: log}
}

// BuildParticipationGraph builds the person-workgroup participation graph.
// Workgroup nodes use display names; an unweighted edge connects a person to
// every workgroup they held any role in, however many meetings that covered.
func (b *Builder) BuildParticipationGraph(meetings []*entities.Meeting) *Graph {
	g := New()
	if len(meetings) == 0 {
		return g
	}

	// Workgroup ids resolve to the display name of their first meeting.
	nameByID := make(map[string]string)
	for _, meeting := range meetings {
		g.AddNode(meeting.Workgroup, NodeTypeWorkgroup)
		if _, ok := nameByID[meeting.WorkgroupID]; !ok {
			nameByID[meeting.WorkgroupID] = meeting.Workgroup
		}
	}

	for _, person := range b.people.List(meetings) {
		g.AddNode(person.Name, NodeTypePerson)
		for workgroupID := range person.Workgroups {
			if name, ok := nameByID[workgroupID]; ok {
				g.AddEdge(person.Name, name)
			}
		}
	}

	b.log.Info("built participation graph",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	return g
}

// BuildTopicGraph builds the topic co-occurrence graph over normalized topic
// strings. Every unordered pair of distinct topics within one meeting bumps
// the pair's edge weight; weights accumulate across the whole collection. A
// topic listed twice in one meeting does not pair with itself.
func (b *Builder) BuildTopicGraph(meetings []*entities.Meeting) *Graph {
	g := New()

	for _, meeting := range meetings {
		normalized := uniqueTopics(meeting.TopicsCovered)
		if len(normalized) == 0 {
			continue
		}

		for i, topic := range normalized {
			g.AddNode(topic, NodeTypeTopic)
			for _, other := range normalized[i+1:] {
				g.AddNode(other, NodeTypeTopic)
				g.IncrementEdge(topic, other)
			}
		}
	}

	b.log.Info("built topic co-occurrence graph",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	return g
}

// Filter narrows a graph to a workgroup and/or date range by re-filtering the
// source meetings and rebuilding from scratch with the builder that produced
// the original, keeping the filtered graph consistent with a fresh build.
func (b *Builder) Filter(g *Graph, meetings []*entities.Meeting, criteria filter.MeetingCriteria) *Graph {
	criteria.Tags = nil
	filtered := b.filters.Meetings(meetings, criteria)

	if g.HasNodeType(NodeTypePerson) || g.HasNodeType(NodeTypeWorkgroup) {
		return b.BuildParticipationGraph(filtered)
	}
	return b.BuildTopicGraph(filtered)
}

// uniqueTopics normalizes a topic list and drops duplicates, preserving first
// occurrence order.
func uniqueTopics(topics []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(topics))
	for _, topic := range textutil.NormalizeTopics(topics) {
		if _, ok := seen[topic]; ok {
			continue
		}
		seen[topic] = struct{}{}
		out = append(out, topic)
	}
	return out
}
