package people

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

func newMeeting(workgroupID, rawDate string, index int) *entities.Meeting {
	key := entities.MeetingKey{WorkgroupID: workgroupID, RawDate: rawDate, Index: index}
	date, _ := time.Parse("2006-01-02", rawDate)
	return entities.NewMeeting(key, workgroupID, date, "Weekly")
}

func TestExtract(t *testing.T) {
	ex := NewExtractor(zap.NewNop())

	m1 := newMeeting("wg-gov", "2025-01-05", 0)
	m1.Host = "Alice"
	m1.Documenter = "Bob"
	m1.PeoplePresent = []string{"Alice", "Charlie"}
	m1.ActionItems = []*entities.ActionItem{{ID: "a1", Assignee: "Charlie"}}

	m2 := newMeeting("wg-res", "2025-01-10", 1)
	m2.Host = "Alice"
	m2.PeoplePresent = []string{"Dana"}

	people := ex.Extract([]*entities.Meeting{m1, m2})
	require.Len(t, people, 4)

	alice := people["Alice"]
	require.NotNil(t, alice)
	// Host of m1 and present at it, host of m2: roles accumulate per workgroup.
	assert.Equal(t, []string{entities.RoleHost, entities.RoleParticipant}, alice.Roles["wg-gov"])
	assert.Equal(t, []string{entities.RoleHost}, alice.Roles["wg-res"])
	assert.Equal(t, []string{m1.ID, m2.ID}, alice.MeetingsAttended)

	charlie := people["Charlie"]
	require.NotNil(t, charlie)
	assert.Equal(t, []string{entities.RoleParticipant}, charlie.Roles["wg-gov"])
	assert.Equal(t, []string{"a1"}, charlie.ActionItemsAssigned)
	assert.Equal(t, []string{m1.ID}, charlie.MeetingsAttended)
}

func TestExtractKeepsBracketVariantsDistinct(t *testing.T) {
	ex := NewExtractor(zap.NewNop())

	m := newMeeting("wg-gov", "2025-01-05", 0)
	m.PeoplePresent = []string{"Stephen", "Stephen [QADAO]"}

	people := ex.Extract([]*entities.Meeting{m})
	assert.Len(t, people, 2)
	assert.Contains(t, people, "Stephen")
	assert.Contains(t, people, "Stephen [QADAO]")
}

func TestExtractIgnoresBlankNames(t *testing.T) {
	ex := NewExtractor(zap.NewNop())

	m := newMeeting("wg-gov", "2025-01-05", 0)
	m.PeoplePresent = []string{"  ", "Alice"}

	people := ex.Extract([]*entities.Meeting{m})
	assert.Len(t, people, 1)
}

func TestListFirstEncounterOrder(t *testing.T) {
	ex := NewExtractor(zap.NewNop())

	m1 := newMeeting("wg-gov", "2025-01-05", 0)
	m1.Host = "Bob"
	m1.PeoplePresent = []string{"Alice"}
	m2 := newMeeting("wg-gov", "2025-01-06", 1)
	m2.Host = "Alice"
	m2.PeoplePresent = []string{"Charlie"}

	out := ex.List([]*entities.Meeting{m1, m2})
	require.Len(t, out, 3)
	assert.Equal(t, "Bob", out[0].Name)
	assert.Equal(t, "Alice", out[1].Name)
	assert.Equal(t, "Charlie", out[2].Name)
}
