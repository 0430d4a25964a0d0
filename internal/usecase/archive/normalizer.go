package archive

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/archivelab/meeting-archive/errors"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/pkg/dates"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// newRecordValidator builds the validator used on raw records, reporting field
// names by their json tags so errors name the wire field.
func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalizeRecord converts one raw JSON record at the given array position
// into a Meeting entity with its nested decisions and action items.
func (s *Service) normalizeRecord(data json.RawMessage, index int) (*entities.Meeting, error) {
	var rm rawMeeting
	if err := json.Unmarshal(data, &rm); err != nil {
		return nil, apperrors.ErrInvalidArgument("record is not a meeting object").WithDetail("reason", err.Error())
	}
	return s.normalizeMeeting(rm, index)
}

func (s *Service) normalizeMeeting(rm rawMeeting, index int) (*entities.Meeting, error) {
	if err := s.validate.Struct(rm); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, apperrors.ErrMissingField(fieldPath(fieldErrs[0]))
		}
		return nil, apperrors.ErrInternal(err)
	}

	rawDate := rm.MeetingInfo.Date
	date, err := dates.Parse(rawDate)
	if err != nil {
		return nil, err
	}

	key := entities.MeetingKey{WorkgroupID: rm.WorkgroupID, RawDate: rawDate, Index: index}
	m := entities.NewMeeting(key, rm.Workgroup, date, rm.Type)
	m.NoSummaryGiven = rm.NoSummaryGiven
	m.CanceledSummary = rm.CanceledSummary

	m.Host = textutil.NormalizeName(rm.MeetingInfo.Host)
	m.Documenter = textutil.NormalizeName(rm.MeetingInfo.Documenter)
	for _, name := range textutil.SplitCommaList(rm.MeetingInfo.PeoplePresent) {
		m.PeoplePresent = append(m.PeoplePresent, textutil.NormalizeName(name))
	}
	m.Purpose = rm.MeetingInfo.Purpose
	m.TypeOfMeeting = rm.MeetingInfo.TypeOfMeeting
	m.MeetingVideoLink = rm.MeetingInfo.MeetingVideoLink
	if len(rm.MeetingInfo.WorkingDocs) > 0 {
		m.WorkingDocs = append(m.WorkingDocs, rm.MeetingInfo.WorkingDocs...)
	}

	// Topics are the additive union of tags.topicsCovered and meetingTopics.
	// Duplicates survive here; dedup is the topic extractor's job.
	m.TopicsCovered = append(m.TopicsCovered, textutil.SplitCommaList(rm.Tags.TopicsCovered)...)
	m.TopicsCovered = append(m.TopicsCovered, rm.MeetingTopics...)
	m.Emotions = append(m.Emotions, textutil.SplitCommaList(rm.Tags.Emotions)...)

	for _, item := range rm.AgendaItems {
		m.DiscussionPoints = append(m.DiscussionPoints, item.DiscussionPoints...)
		if item.Narrative != "" {
			m.DiscussionPoints = append(m.DiscussionPoints, item.Narrative)
		}
	}

	for agendaIdx, item := range rm.AgendaItems {
		for itemIdx, ra := range item.ActionItems {
			itemKey := entities.ItemKey{Meeting: key, Kind: entities.ItemKindAction, AgendaIndex: agendaIdx, ItemIndex: itemIdx}
			action, err := entities.NewActionItem(itemKey, rm.Workgroup, date, ra.Text, ra.Status, textutil.NormalizeName(ra.Assignee), ra.DueDate)
			if err != nil {
				s.log.Warn("skipping malformed action item",
					zap.String("meeting_id", m.ID),
					zap.Int("agenda_index", agendaIdx),
					zap.Int("item_index", itemIdx),
					zap.Error(apperrors.ErrInvalidEntity("action item", err)),
				)
				continue
			}
			m.ActionItems = append(m.ActionItems, action)
		}

		for itemIdx, rd := range item.DecisionItems {
			itemKey := entities.ItemKey{Meeting: key, Kind: entities.ItemKindDecision, AgendaIndex: agendaIdx, ItemIndex: itemIdx}
			decision, err := entities.NewDecision(itemKey, rm.Workgroup, date, rd.Decision, rd.Effect, rd.Rationale, rd.Opposing)
			if err != nil {
				s.log.Warn("skipping malformed decision",
					zap.String("meeting_id", m.ID),
					zap.Int("agenda_index", agendaIdx),
					zap.Int("item_index", itemIdx),
					zap.Error(apperrors.ErrInvalidEntity("decision", err)),
				)
				continue
			}
			m.Decisions = append(m.Decisions, decision)
		}
	}

	return m, nil
}

// fieldPath strips the root struct name from a validation error namespace,
// leaving the wire path like "workgroup" or "meetingInfo.date".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
