package entities

// Roles a person can hold in a workgroup.
const (
	RoleHost        = "host"
	RoleDocumenter  = "documenter"
	RoleParticipant = "participant"
)

// Person represents a community member, identified by normalized display name.
// Two names differing only by a bracket suffix ("Stephen" vs "Stephen [QADAO]")
// are two distinct people; no identity merging happens anywhere.
type Person struct {
	Name                string              `json:"name"`
	Workgroups          map[string]struct{} `json:"-"`
	MeetingsAttended    []string            `json:"meetings_attended"`
	ActionItemsAssigned []string            `json:"action_items_assigned"`
	// Roles maps workgroup id to the roles the person has ever held there,
	// in the order they were first seen.
	Roles map[string][]string `json:"roles"`
}

// NewPerson creates a Person. The name must be non-empty after trimming.
func NewPerson(name string) (*Person, error) {
	if name == "" {
		return nil, ErrEmptyPersonName
	}

	return &Person{
		Name:                name,
		Workgroups:          make(map[string]struct{}),
		MeetingsAttended:    []string{},
		ActionItemsAssigned: []string{},
		Roles:               make(map[string][]string),
	}, nil
}

// AddWorkgroup records participation in a workgroup with the given role.
// Role sets accumulate; a role already held in that workgroup is not repeated.
func (p *Person) AddWorkgroup(workgroupID, role string) {
	p.Workgroups[workgroupID] = struct{}{}
	for _, held := range p.Roles[workgroupID] {
		if held == role {
			return
		}
	}
	p.Roles[workgroupID] = append(p.Roles[workgroupID], role)
}

// AddMeeting appends a meeting id to the attended list if not already present.
func (p *Person) AddMeeting(meetingID string) {
	for _, id := range p.MeetingsAttended {
		if id == meetingID {
			return
		}
	}
	p.MeetingsAttended = append(p.MeetingsAttended, meetingID)
}

// AddActionItem appends an action item id to the assigned list if not already
// present.
func (p *Person) AddActionItem(actionItemID string) {
	for _, id := range p.ActionItemsAssigned {
		if id == actionItemID {
			return
		}
	}
	p.ActionItemsAssigned = append(p.ActionItemsAssigned, actionItemID)
}
