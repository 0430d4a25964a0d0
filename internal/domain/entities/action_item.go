package entities

import (
	"strings"
	"time"
)

// ActionItem status constants
const (
	StatusTodo       = "todo"
	StatusInProgress = "in progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

// ActionItem represents a task recorded under a meeting's agenda. Workgroup
// and date are denormalized from the parent meeting for query convenience.
type ActionItem struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Workgroup string    `json:"workgroup"`
	Date      time.Time `json:"date"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Assignee  string    `json:"assignee,omitempty"`
	// DueDate stays a free-form string; observed formats vary too widely to
	// parse reliably.
	DueDate string `json:"due_date,omitempty"`
}

// NewActionItem creates an ActionItem, normalizing the status to one of the
// four canonical values. Empty text after trimming fails construction.
func NewActionItem(key ItemKey, workgroup string, date time.Time, text, status, assignee, dueDate string) (*ActionItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyActionText
	}

	return &ActionItem{
		ID:        key.String(),
		MeetingID: key.Meeting.String(),
		Workgroup: workgroup,
		Date:      date,
		Text:      text,
		Status:    NormalizeStatus(status),
		Assignee:  strings.TrimSpace(assignee),
		DueDate:   strings.TrimSpace(dueDate),
	}, nil
}

// NormalizeStatus maps known status spellings onto the canonical values,
// ignoring case, spaces, hyphens and underscores. Unrecognized input falls
// back to "todo" rather than failing.
func NormalizeStatus(status string) string {
	compact := strings.ToLower(strings.TrimSpace(status))
	compact = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(compact)

	switch compact {
	case "", "todo":
		return StatusTodo
	case "inprogress":
		return StatusInProgress
	case "done", "completed", "complete":
		return StatusDone
	case "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusTodo
	}
}
