package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/filter"
	"github.com/archivelab/meeting-archive/internal/usecase/people"
)

func newBuilder() *Builder {
	log := zap.NewNop()
	return NewBuilder(people.NewExtractor(log), filter.NewService(log), log)
}

func newMeeting(workgroup, workgroupID string, day, index int, topics ...string) *entities.Meeting {
	date := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
	key := entities.MeetingKey{WorkgroupID: workgroupID, RawDate: date.Format("2006-01-02"), Index: index}
	m := entities.NewMeeting(key, workgroup, date, "Weekly")
	m.TopicsCovered = append(m.TopicsCovered, topics...)
	return m
}

func TestBuildParticipationGraph(t *testing.T) {
	b := newBuilder()

	m1 := newMeeting("Governance", "wg-gov", 5, 0)
	m1.Host = "Alice"
	m1.PeoplePresent = []string{"Bob"}
	m2 := newMeeting("Research", "wg-res", 10, 1)
	m2.PeoplePresent = []string{"Alice"}

	g := b.BuildParticipationGraph([]*entities.Meeting{m1, m2})

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("Alice", "Governance"))
	assert.True(t, g.HasEdge("Alice", "Research"))
	assert.True(t, g.HasEdge("Bob", "Governance"))
	assert.False(t, g.HasEdge("Bob", "Research"))
	assert.False(t, g.HasEdge("Alice", "Bob"))
}

func TestBuildParticipationGraphEdgesAreUnweighted(t *testing.T) {
	b := newBuilder()

	// Alice hosts the same workgroup twice; one edge, weight zero.
	m1 := newMeeting("Governance", "wg-gov", 5, 0)
	m1.Host = "Alice"
	m2 := newMeeting("Governance", "wg-gov", 12, 1)
	m2.Host = "Alice"

	g := b.BuildParticipationGraph([]*entities.Meeting{m1, m2})
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 0, g.EdgeWeight("Alice", "Governance"))
}

func TestBuildParticipationGraphEmpty(t *testing.T) {
	g := newBuilder().BuildParticipationGraph(nil)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuildTopicGraph(t *testing.T) {
	b := newBuilder()

	meetings := []*entities.Meeting{
		newMeeting("Governance", "wg-gov", 5, 0, "A", "B"),
		newMeeting("Governance", "wg-gov", 10, 1, "B", "C"),
		newMeeting("Research", "wg-res", 15, 2, "A", "C"),
	}

	g := b.BuildTopicGraph(meetings)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.EdgeWeight("a", "b"))
	assert.Equal(t, 1, g.EdgeWeight("b", "c"))
	assert.Equal(t, 1, g.EdgeWeight("a", "c"))

	// A fourth meeting re-tagging an existing pair bumps that weight only.
	meetings = append(meetings, newMeeting("Research", "wg-res", 20, 3, "A", "B"))
	g = b.BuildTopicGraph(meetings)
	assert.Equal(t, 2, g.EdgeWeight("a", "b"))
	assert.Equal(t, 1, g.EdgeWeight("b", "c"))
}

func TestBuildTopicGraphNoSelfPairs(t *testing.T) {
	b := newBuilder()

	g := b.BuildTopicGraph([]*entities.Meeting{
		newMeeting("Governance", "wg-gov", 5, 0, "Governance", "governance", "Budget"),
	})

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("governance", "governance"))
	assert.Equal(t, 1, g.EdgeWeight("governance", "budget"))
}

func TestBuildTopicGraphSingleTopicMeeting(t *testing.T) {
	b := newBuilder()

	g := b.BuildTopicGraph([]*entities.Meeting{
		newMeeting("Governance", "wg-gov", 5, 0, "Governance"),
	})
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestFilterRebuildsParticipationGraph(t *testing.T) {
	b := newBuilder()

	m1 := newMeeting("Governance", "wg-gov", 5, 0)
	m1.Host = "Alice"
	m2 := newMeeting("Research", "wg-res", 10, 1)
	m2.Host = "Bob"
	meetings := []*entities.Meeting{m1, m2}

	full := b.BuildParticipationGraph(meetings)
	require.Equal(t, 4, full.NodeCount())

	narrowed := b.Filter(full, meetings, filter.MeetingCriteria{Workgroup: "Research"})
	assert.Equal(t, 2, narrowed.NodeCount())
	assert.True(t, narrowed.HasEdge("Bob", "Research"))
	assert.False(t, narrowed.HasEdge("Alice", "Governance"))

	// The original graph is untouched.
	assert.Equal(t, 4, full.NodeCount())
}

func TestFilterRebuildsTopicGraphByDateRange(t *testing.T) {
	b := newBuilder()

	meetings := []*entities.Meeting{
		newMeeting("Governance", "wg-gov", 5, 0, "A", "B"),
		newMeeting("Governance", "wg-gov", 20, 1, "B", "C"),
	}

	full := b.BuildTopicGraph(meetings)
	require.Equal(t, 3, full.NodeCount())

	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	narrowed := b.Filter(full, meetings, filter.MeetingCriteria{EndDate: &end})
	assert.Equal(t, 2, narrowed.NodeCount())
	assert.Equal(t, 1, narrowed.EdgeWeight("a", "b"))
	assert.False(t, narrowed.HasEdge("b", "c"))
}
