// Package workgroup derives workgroup views by grouping the meeting
// collection by workgroup id.
package workgroup

import (
	"sort"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

// Sort orders for MeetingsByWorkgroup.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Service computes workgroup groupings over a meeting collection.
type Service struct {
	meetings []*entities.Meeting
}

// NewService constructs a workgroup Service over the loaded collection.
func NewService(meetings []*entities.Meeting) *Service {
	return &Service{meetings: meetings}
}

// All returns the distinct workgroups in first-seen order. The display name
// comes from the first meeting of each group.
func (s *Service) All() []*entities.Workgroup {
	byID := make(map[string]*entities.Workgroup)
	order := make([]string, 0)

	for _, meeting := range s.meetings {
		wg, ok := byID[meeting.WorkgroupID]
		if !ok {
			wg = &entities.Workgroup{ID: meeting.WorkgroupID, Name: meeting.Workgroup}
			byID[meeting.WorkgroupID] = wg
			order = append(order, meeting.WorkgroupID)
		}
		wg.Meetings = append(wg.Meetings, meeting)
	}

	out := make([]*entities.Workgroup, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

// MeetingsByWorkgroup returns the meetings of the named workgroup sorted
// chronologically, newest first by default.
func (s *Service) MeetingsByWorkgroup(name, sortOrder string) []*entities.Meeting {
	out := make([]*entities.Meeting, 0)
	for _, meeting := range s.meetings {
		if meeting.Workgroup == name {
			out = append(out, meeting)
		}
	}

	if sortOrder == SortOldest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out
}
