package browse

import "github.com/archivelab/meeting-archive/internal/usecase/graph"

// MeetingResponse is the API shape of one meeting.
type MeetingResponse struct {
	ID               string               `json:"id"`
	Workgroup        string               `json:"workgroup"`
	WorkgroupID      string               `json:"workgroup_id"`
	Date             string               `json:"date"`
	Type             string               `json:"type"`
	NoSummaryGiven   bool                 `json:"no_summary_given"`
	CanceledSummary  bool                 `json:"canceled_summary"`
	Host             string               `json:"host,omitempty"`
	Documenter       string               `json:"documenter,omitempty"`
	Purpose          string               `json:"purpose,omitempty"`
	TypeOfMeeting    string               `json:"type_of_meeting,omitempty"`
	MeetingVideoLink string               `json:"meeting_video_link,omitempty"`
	PeoplePresent    []string             `json:"people_present"`
	DiscussionPoints []string             `json:"discussion_points"`
	TopicsCovered    []string             `json:"topics_covered"`
	Emotions         []string             `json:"emotions"`
	WorkingDocs      []WorkingDocResponse `json:"working_docs"`
	Decisions        []DecisionResponse   `json:"decisions"`
	ActionItems      []ActionItemResponse `json:"action_items"`
}

// WorkingDocResponse is a titled document link.
type WorkingDocResponse struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// DecisionResponse is the API shape of one decision.
type DecisionResponse struct {
	ID        string `json:"id"`
	MeetingID string `json:"meeting_id"`
	Workgroup string `json:"workgroup"`
	Date      string `json:"date"`
	Text      string `json:"decision_text"`
	Effect    string `json:"effect"`
	Rationale string `json:"rationale,omitempty"`
	Opposing  string `json:"opposing,omitempty"`
}

// ActionItemResponse is the API shape of one action item.
type ActionItemResponse struct {
	ID        string `json:"id"`
	MeetingID string `json:"meeting_id"`
	Workgroup string `json:"workgroup"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
}

// PersonResponse is the API shape of one person aggregate.
type PersonResponse struct {
	Name                string              `json:"name"`
	Workgroups          []string            `json:"workgroups"`
	MeetingsAttended    []string            `json:"meetings_attended"`
	ActionItemsAssigned []string            `json:"action_items_assigned"`
	Roles               map[string][]string `json:"roles"`
}

// TopicResponse is the API shape of one topic aggregate.
type TopicResponse struct {
	Name          string         `json:"name"`
	Meetings      []string       `json:"meetings"`
	Workgroups    []string       `json:"workgroups"`
	CoOccurrences map[string]int `json:"co_occurrences"`
}

// TopicListResponse carries both topic representations.
type TopicListResponse struct {
	Topics     []string `json:"topics"`
	Normalized []string `json:"normalized"`
}

// WorkgroupResponse is the API shape of one workgroup.
type WorkgroupResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MeetingCount int    `json:"meeting_count"`
}

// GraphResponse is the API shape of a relationship graph.
type GraphResponse struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// ListResponse wraps a collection with its size.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}
