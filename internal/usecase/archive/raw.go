package archive

import (
	"encoding/json"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// StringOrList decodes a JSON field that arrives either as an array of strings
// or as a single comma-separated string. Both shapes normalize to one list at
// the archive boundary so nothing downstream branches on runtime shape.
type StringOrList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = textutil.SplitCommaList(single)
	return nil
}

// rawMeeting mirrors one element of the source JSON array. Field order matters:
// the validator reports missing fields in declaration order, which gives the
// documented precedence workgroup, workgroup_id, type, meetingInfo.date.
type rawMeeting struct {
	Workgroup       string          `json:"workgroup" validate:"required"`
	WorkgroupID     string          `json:"workgroup_id" validate:"required"`
	Type            string          `json:"type" validate:"required"`
	MeetingInfo     *rawMeetingInfo `json:"meetingInfo" validate:"required"`
	NoSummaryGiven  bool            `json:"noSummaryGiven"`
	CanceledSummary bool            `json:"canceledSummary"`
	Tags            rawTags         `json:"tags"`
	MeetingTopics   StringOrList    `json:"meetingTopics"`
	AgendaItems     []rawAgendaItem `json:"agendaItems"`
}

type rawMeetingInfo struct {
	Date             string                `json:"date" validate:"required"`
	Host             string                `json:"host"`
	Documenter       string                `json:"documenter"`
	PeoplePresent    string                `json:"peoplePresent"`
	Purpose          string                `json:"purpose"`
	TypeOfMeeting    string                `json:"typeOfMeeting"`
	MeetingVideoLink string                `json:"meetingVideoLink"`
	WorkingDocs      []entities.WorkingDoc `json:"workingDocs"`
}

type rawTags struct {
	TopicsCovered string `json:"topicsCovered"`
	Emotions      string `json:"emotions"`
}

type rawAgendaItem struct {
	DiscussionPoints []string          `json:"discussionPoints"`
	Narrative        string            `json:"narrative"`
	ActionItems      []rawActionItem   `json:"actionItems"`
	DecisionItems    []rawDecisionItem `json:"decisionItems"`
}

type rawActionItem struct {
	Text     string `json:"text"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate"`
}

type rawDecisionItem struct {
	Decision  string `json:"decision"`
	Effect    string `json:"effect"`
	Rationale string `json:"rationale"`
	Opposing  string `json:"opposing"`
}
