package entities

import "fmt"

// MeetingKey is the composite identity of a meeting within one archive load:
// the workgroup id, the raw (unparsed) date string from the source record, and
// the record's position in the source array. The raw date is kept on purpose:
// two records whose date strings format the same calendar day differently
// still get distinct ids.
type MeetingKey struct {
	WorkgroupID string
	RawDate     string
	Index       int
}

// String renders the key in its canonical wire form.
func (k MeetingKey) String() string {
	return fmt.Sprintf("%s_%s_%d", k.WorkgroupID, k.RawDate, k.Index)
}

// ItemKind distinguishes the two kinds of agenda sub-items.
type ItemKind string

const (
	ItemKindAction   ItemKind = "action"
	ItemKindDecision ItemKind = "decision"
)

// ItemKey identifies an action item or decision nested under an agenda item.
// Uniqueness is per meeting; no global counter is involved.
type ItemKey struct {
	Meeting     MeetingKey
	Kind        ItemKind
	AgendaIndex int
	ItemIndex   int
}

// String renders the key in its canonical wire form.
func (k ItemKey) String() string {
	return fmt.Sprintf("%s_%s_%d_%d", k.Meeting, k.Kind, k.AgendaIndex, k.ItemIndex)
}
