package entities

import "time"

// WorkingDoc is a titled link to a document referenced by a meeting.
type WorkingDoc struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Meeting represents a single normalized meeting record from the archive.
// Meetings are built once by the record normalizer during load and are
// read-only for every downstream component.
type Meeting struct {
	ID               string        `json:"id"`
	Workgroup        string        `json:"workgroup"`
	WorkgroupID      string        `json:"workgroup_id"`
	Date             time.Time     `json:"date"`
	Type             string        `json:"type"`
	NoSummaryGiven   bool          `json:"no_summary_given"`
	CanceledSummary  bool          `json:"canceled_summary"`
	Host             string        `json:"host,omitempty"`
	Documenter       string        `json:"documenter,omitempty"`
	PeoplePresent    []string      `json:"people_present"`
	Purpose          string        `json:"purpose,omitempty"`
	TypeOfMeeting    string        `json:"type_of_meeting,omitempty"`
	MeetingVideoLink string        `json:"meeting_video_link,omitempty"`
	WorkingDocs      []WorkingDoc  `json:"working_docs"`
	ActionItems      []*ActionItem `json:"action_items"`
	Decisions        []*Decision   `json:"decisions"`
	DiscussionPoints []string      `json:"discussion_points"`
	TopicsCovered    []string      `json:"topics_covered"`
	Emotions         []string      `json:"emotions"`
}

// NewMeeting creates a Meeting with the required identity fields set and every
// collection initialized to empty, never nil.
func NewMeeting(key MeetingKey, workgroup string, date time.Time, meetingType string) *Meeting {
	return &Meeting{
		ID:               key.String(),
		Workgroup:        workgroup,
		WorkgroupID:      key.WorkgroupID,
		Date:             date,
		Type:             meetingType,
		PeoplePresent:    []string{},
		WorkingDocs:      []WorkingDoc{},
		ActionItems:      []*ActionItem{},
		Decisions:        []*Decision{},
		DiscussionPoints: []string{},
		TopicsCovered:    []string{},
		Emotions:         []string{},
	}
}
