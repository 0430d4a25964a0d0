package entities

// Workgroup groups the meetings that share a workgroup id. It is derived on
// demand from the meeting collection, never stored separately.
type Workgroup struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Meetings []*Meeting `json:"-"`
}

// MeetingCount returns the number of meetings held by this workgroup.
func (w *Workgroup) MeetingCount() int {
	return len(w.Meetings)
}
