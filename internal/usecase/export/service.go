// Package export serializes entity collections to plain text, CSV and JSON
// for download by the browsing UI.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/archivelab/meeting-archive/errors"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

const (
	dateLayout = "2006-01-02"
	isoLayout  = "2006-01-02T15:04:05"
)

var (
	meetingHeaders    = []string{"ID", "Workgroup", "Date", "Host", "Documenter", "Purpose", "Type of Meeting", "People Present", "Topics Covered", "Video Link"}
	decisionHeaders   = []string{"ID", "Meeting ID", "Workgroup", "Date", "Decision Text", "Rationale", "Effect", "Opposing Views"}
	actionItemHeaders = []string{"ID", "Meeting ID", "Workgroup", "Date", "Text", "Assignee", "Status", "Due Date"}
)

// Service exports entity collections in the formats the UI offers.
type Service struct {
	log *zap.Logger
}

// NewService constructs an export Service with the given logging sink.
func NewService(log *zap.Logger) *Service {
	return &Service{log: log}
}

// MeetingsPlainText renders meetings as tab-separated text with a header row.
func (s *Service) MeetingsPlainText(meetings []*entities.Meeting) string {
	if len(meetings) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(meetings))
	for _, m := range meetings {
		rows = append(rows, meetingRow(m))
	}

	s.log.Info("exported meetings", zap.String("format", "text"), zap.Int("count", len(meetings)))
	return tabSeparated(meetingHeaders, rows)
}

// DecisionsPlainText renders decisions as tab-separated text with a header row.
func (s *Service) DecisionsPlainText(decisions []*entities.Decision) string {
	if len(decisions) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, decisionRow(d))
	}

	s.log.Info("exported decisions", zap.String("format", "text"), zap.Int("count", len(decisions)))
	return tabSeparated(decisionHeaders, rows)
}

// ActionItemsPlainText renders action items as tab-separated text with a
// header row.
func (s *Service) ActionItemsPlainText(items []*entities.ActionItem) string {
	if len(items) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, actionItemRow(item))
	}

	s.log.Info("exported action items", zap.String("format", "text"), zap.Int("count", len(items)))
	return tabSeparated(actionItemHeaders, rows)
}

// MeetingsCSV renders meetings as CSV bytes.
func (s *Service) MeetingsCSV(meetings []*entities.Meeting) ([]byte, error) {
	rows := make([][]string, 0, len(meetings))
	for _, m := range meetings {
		rows = append(rows, meetingRow(m))
	}
	return s.writeCSV(meetingHeaders, rows)
}

// DecisionsCSV renders decisions as CSV bytes.
func (s *Service) DecisionsCSV(decisions []*entities.Decision) ([]byte, error) {
	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		rows = append(rows, decisionRow(d))
	}
	return s.writeCSV(decisionHeaders, rows)
}

// ActionItemsCSV renders action items as CSV bytes.
func (s *Service) ActionItemsCSV(items []*entities.ActionItem) ([]byte, error) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, actionItemRow(item))
	}
	return s.writeCSV(actionItemHeaders, rows)
}

// MeetingsJSON renders meetings as an indented JSON array.
func (s *Service) MeetingsJSON(meetings []*entities.Meeting) ([]byte, error) {
	out := make([]meetingExport, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, meetingExport{
			ID:               m.ID,
			Workgroup:        m.Workgroup,
			WorkgroupID:      m.WorkgroupID,
			Date:             m.Date.Format(isoLayout),
			Host:             m.Host,
			Documenter:       m.Documenter,
			Purpose:          m.Purpose,
			TypeOfMeeting:    m.TypeOfMeeting,
			PeoplePresent:    m.PeoplePresent,
			TopicsCovered:    m.TopicsCovered,
			MeetingVideoLink: m.MeetingVideoLink,
		})
	}
	return s.marshalJSON(out)
}

// DecisionsJSON renders decisions as an indented JSON array.
func (s *Service) DecisionsJSON(decisions []*entities.Decision) ([]byte, error) {
	out := make([]decisionExport, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, decisionExport{
			ID:           d.ID,
			MeetingID:    d.MeetingID,
			Workgroup:    d.Workgroup,
			Date:         d.Date.Format(isoLayout),
			DecisionText: d.Text,
			Rationale:    d.Rationale,
			Effect:       d.Effect,
			Opposing:     d.Opposing,
		})
	}
	return s.marshalJSON(out)
}

// ActionItemsJSON renders action items as an indented JSON array.
func (s *Service) ActionItemsJSON(items []*entities.ActionItem) ([]byte, error) {
	out := make([]actionItemExport, 0, len(items))
	for _, item := range items {
		out = append(out, actionItemExport{
			ID:        item.ID,
			MeetingID: item.MeetingID,
			Workgroup: item.Workgroup,
			Date:      item.Date.Format(isoLayout),
			Text:      item.Text,
			Assignee:  item.Assignee,
			Status:    item.Status,
			DueDate:   item.DueDate,
		})
	}
	return s.marshalJSON(out)
}

type meetingExport struct {
	ID               string   `json:"id"`
	Workgroup        string   `json:"workgroup"`
	WorkgroupID      string   `json:"workgroup_id"`
	Date             string   `json:"date"`
	Host             string   `json:"host,omitempty"`
	Documenter       string   `json:"documenter,omitempty"`
	Purpose          string   `json:"purpose,omitempty"`
	TypeOfMeeting    string   `json:"type_of_meeting,omitempty"`
	PeoplePresent    []string `json:"people_present"`
	TopicsCovered    []string `json:"topics_covered"`
	MeetingVideoLink string   `json:"meeting_video_link,omitempty"`
}

type decisionExport struct {
	ID           string `json:"id"`
	MeetingID    string `json:"meeting_id"`
	Workgroup    string `json:"workgroup"`
	Date         string `json:"date"`
	DecisionText string `json:"decision_text"`
	Rationale    string `json:"rationale,omitempty"`
	Effect       string `json:"effect"`
	Opposing     string `json:"opposing,omitempty"`
}

type actionItemExport struct {
	ID        string `json:"id"`
	MeetingID string `json:"meeting_id"`
	Workgroup string `json:"workgroup"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Assignee  string `json:"assignee,omitempty"`
	Status    string `json:"status"`
	DueDate   string `json:"due_date,omitempty"`
}

func meetingRow(m *entities.Meeting) []string {
	return []string{
		m.ID,
		m.Workgroup,
		m.Date.Format(dateLayout),
		m.Host,
		m.Documenter,
		m.Purpose,
		m.TypeOfMeeting,
		strings.Join(m.PeoplePresent, ", "),
		strings.Join(m.TopicsCovered, ", "),
		m.MeetingVideoLink,
	}
}

func decisionRow(d *entities.Decision) []string {
	return []string{
		d.ID,
		d.MeetingID,
		d.Workgroup,
		d.Date.Format(dateLayout),
		d.Text,
		d.Rationale,
		d.Effect,
		d.Opposing,
	}
}

func actionItemRow(item *entities.ActionItem) []string {
	return []string{
		item.ID,
		item.MeetingID,
		item.Workgroup,
		item.Date.Format(dateLayout),
		item.Text,
		item.Assignee,
		item.Status,
		item.DueDate,
	}
}

// tabSeparated joins rows with tabs, flattening embedded tabs and newlines so
// each record stays on one line.
func tabSeparated(headers []string, rows [][]string) string {
	sanitize := strings.NewReplacer("\t", " ", "\n", " ")

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, "\t"))
	for _, row := range rows {
		cleaned := make([]string, len(row))
		for i, field := range row {
			cleaned[i] = sanitize.Replace(field)
		}
		lines = append(lines, strings.Join(cleaned, "\t"))
	}
	return strings.Join(lines, "\n")
}

func (s *Service) writeCSV(headers []string, rows [][]string) ([]byte, error) {
	if len(rows) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, apperrors.ErrExportFailed("csv", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, apperrors.ErrExportFailed("csv", err)
	}

	s.log.Info("exported records", zap.String("format", "csv"), zap.Int("count", len(rows)))
	return buf.Bytes(), nil
}

func (s *Service) marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, apperrors.ErrExportFailed("json", err)
	}
	return data, nil
}
