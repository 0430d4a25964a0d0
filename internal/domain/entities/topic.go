package entities

// Topic is the materialized aggregate view of one normalized topic string:
// where it was discussed and which other topics it co-occurred with. Derived
// from the meeting collection on demand; it has no independent lifecycle.
type Topic struct {
	Name          string              `json:"name"`
	Meetings      []string            `json:"meetings"`
	Workgroups    map[string]struct{} `json:"-"`
	CoOccurrences map[string]int      `json:"co_occurrences"`
}

// NewTopic creates an empty Topic aggregate for the given normalized name.
func NewTopic(name string) *Topic {
	return &Topic{
		Name:          name,
		Meetings:      []string{},
		Workgroups:    make(map[string]struct{}),
		CoOccurrences: make(map[string]int),
	}
}

// AddMeeting appends a meeting id if not already present.
func (t *Topic) AddMeeting(meetingID string) {
	for _, id := range t.Meetings {
		if id == meetingID {
			return
		}
	}
	t.Meetings = append(t.Meetings, meetingID)
}

// AddWorkgroup records that the workgroup discussed this topic.
func (t *Topic) AddWorkgroup(workgroupID string) {
	t.Workgroups[workgroupID] = struct{}{}
}

// AddCoOccurrence bumps the co-occurrence count with another topic.
func (t *Topic) AddCoOccurrence(other string) {
	t.CoOccurrences[other]++
}
