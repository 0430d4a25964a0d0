package entities

import (
	"fmt"
	"strings"
	"time"
)

// Decision effect constants
const (
	EffectWorkgroupOnly = "affectsOnlyThisWorkgroup"
	EffectOtherPeople   = "mayAffectOtherPeople"
)

// Decision represents a decision made in a meeting. Workgroup and date are
// denormalized from the parent meeting for query convenience.
type Decision struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	Workgroup string    `json:"workgroup"`
	Date      time.Time `json:"date"`
	Text      string    `json:"decision_text"`
	Effect    string    `json:"effect"`
	Rationale string    `json:"rationale,omitempty"`
	Opposing  string    `json:"opposing,omitempty"`
}

// NewDecision creates a Decision. The effect is matched case-insensitively
// against the two canonical values and defaults to EffectWorkgroupOnly when
// empty; an unrecognized effect fails construction, as does empty text.
func NewDecision(key ItemKey, workgroup string, date time.Time, text, effect, rationale, opposing string) (*Decision, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyDecisionText
	}

	canonical, err := normalizeEffect(effect)
	if err != nil {
		return nil, err
	}

	return &Decision{
		ID:        key.String(),
		MeetingID: key.Meeting.String(),
		Workgroup: workgroup,
		Date:      date,
		Text:      text,
		Effect:    canonical,
		Rationale: strings.TrimSpace(rationale),
		Opposing:  strings.TrimSpace(opposing),
	}, nil
}

func normalizeEffect(effect string) (string, error) {
	if effect == "" {
		return EffectWorkgroupOnly, nil
	}

	switch strings.ToLower(effect) {
	case strings.ToLower(EffectWorkgroupOnly):
		return EffectWorkgroupOnly, nil
	case strings.ToLower(EffectOtherPeople):
		return EffectOtherPeople, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidEffect, effect)
	}
}
