package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

func TestDecisions(t *testing.T) {
	svc := NewService(zap.NewNop())

	m1 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-1", RawDate: "2025-01-05", Index: 0}, "Governance", time.Now(), "Weekly")
	m1.Decisions = []*entities.Decision{{ID: "d1"}, {ID: "d2"}}
	m2 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-2", RawDate: "2025-01-06", Index: 1}, "Research", time.Now(), "Weekly")
	m3 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-1", RawDate: "2025-01-07", Index: 2}, "Governance", time.Now(), "Weekly")
	m3.Decisions = []*entities.Decision{{ID: "d3"}}

	out := svc.Decisions([]*entities.Meeting{m1, m2, m3})
	require.Len(t, out, 3)
	assert.Equal(t, "d1", out[0].ID)
	assert.Equal(t, "d2", out[1].ID)
	assert.Equal(t, "d3", out[2].ID)
}

func TestActionItems(t *testing.T) {
	svc := NewService(zap.NewNop())

	m1 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-1", RawDate: "2025-01-05", Index: 0}, "Governance", time.Now(), "Weekly")
	m1.ActionItems = []*entities.ActionItem{{ID: "a1"}}
	m2 := entities.NewMeeting(entities.MeetingKey{WorkgroupID: "wg-2", RawDate: "2025-01-06", Index: 1}, "Research", time.Now(), "Weekly")
	m2.ActionItems = []*entities.ActionItem{{ID: "a2"}, {ID: "a3"}}

	out := svc.ActionItems([]*entities.Meeting{m1, m2})
	require.Len(t, out, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestEmptyInput(t *testing.T) {
	svc := NewService(zap.NewNop())

	assert.Empty(t, svc.Decisions(nil))
	assert.NotNil(t, svc.Decisions(nil))
	assert.Empty(t, svc.ActionItems([]*entities.Meeting{}))
}
