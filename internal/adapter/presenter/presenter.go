// Package presenter maps domain entities onto browse API response DTOs.
package presenter

import (
	"sort"

	"github.com/archivelab/meeting-archive/internal/adapter/dto/browse"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/internal/usecase/graph"
)

const dateLayout = "2006-01-02T15:04:05"

// Meeting maps one meeting entity to its response shape.
func Meeting(m *entities.Meeting) browse.MeetingResponse {
	docs := make([]browse.WorkingDocResponse, 0, len(m.WorkingDocs))
	for _, doc := range m.WorkingDocs {
		docs = append(docs, browse.WorkingDocResponse{Title: doc.Title, Link: doc.Link})
	}

	return browse.MeetingResponse{
		ID:               m.ID,
		Workgroup:        m.Workgroup,
		WorkgroupID:      m.WorkgroupID,
		Date:             m.Date.Format(dateLayout),
		Type:             m.Type,
		NoSummaryGiven:   m.NoSummaryGiven,
		CanceledSummary:  m.CanceledSummary,
		Host:             m.Host,
		Documenter:       m.Documenter,
		Purpose:          m.Purpose,
		TypeOfMeeting:    m.TypeOfMeeting,
		MeetingVideoLink: m.MeetingVideoLink,
		PeoplePresent:    m.PeoplePresent,
		DiscussionPoints: m.DiscussionPoints,
		TopicsCovered:    m.TopicsCovered,
		Emotions:         m.Emotions,
		WorkingDocs:      docs,
		Decisions:        Decisions(m.Decisions),
		ActionItems:      ActionItems(m.ActionItems),
	}
}

// Meetings maps a meeting collection.
func Meetings(meetings []*entities.Meeting) []browse.MeetingResponse {
	out := make([]browse.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, Meeting(m))
	}
	return out
}

// Decisions maps a decision collection.
func Decisions(decisions []*entities.Decision) []browse.DecisionResponse {
	out := make([]browse.DecisionResponse, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, browse.DecisionResponse{
			ID:        d.ID,
			MeetingID: d.MeetingID,
			Workgroup: d.Workgroup,
			Date:      d.Date.Format(dateLayout),
			Text:      d.Text,
			Effect:    d.Effect,
			Rationale: d.Rationale,
			Opposing:  d.Opposing,
		})
	}
	return out
}

// ActionItems maps an action item collection.
func ActionItems(items []*entities.ActionItem) []browse.ActionItemResponse {
	out := make([]browse.ActionItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, browse.ActionItemResponse{
			ID:        item.ID,
			MeetingID: item.MeetingID,
			Workgroup: item.Workgroup,
			Date:      item.Date.Format(dateLayout),
			Text:      item.Text,
			Status:    item.Status,
			Assignee:  item.Assignee,
			DueDate:   item.DueDate,
		})
	}
	return out
}

// People maps person aggregates, rendering workgroup sets as sorted lists.
func People(persons []*entities.Person) []browse.PersonResponse {
	out := make([]browse.PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, browse.PersonResponse{
			Name:                p.Name,
			Workgroups:          sortedSet(p.Workgroups),
			MeetingsAttended:    p.MeetingsAttended,
			ActionItemsAssigned: p.ActionItemsAssigned,
			Roles:               p.Roles,
		})
	}
	return out
}

// Topics maps topic aggregates.
func Topics(topics []*entities.Topic) []browse.TopicResponse {
	out := make([]browse.TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, browse.TopicResponse{
			Name:          t.Name,
			Meetings:      t.Meetings,
			Workgroups:    sortedSet(t.Workgroups),
			CoOccurrences: t.CoOccurrences,
		})
	}
	return out
}

// Workgroups maps workgroup groupings.
func Workgroups(workgroups []*entities.Workgroup) []browse.WorkgroupResponse {
	out := make([]browse.WorkgroupResponse, 0, len(workgroups))
	for _, wg := range workgroups {
		out = append(out, browse.WorkgroupResponse{
			ID:           wg.ID,
			Name:         wg.Name,
			MeetingCount: wg.MeetingCount(),
		})
	}
	return out
}

// Graph maps a relationship graph.
func Graph(g *graph.Graph) browse.GraphResponse {
	return browse.GraphResponse{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	}
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
