// Package people reconciles person names found across meeting records into
// unique Person aggregates with role and participation tracking.
package people

import (
	"go.uber.org/zap"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// Extractor derives Person aggregates from a meeting collection. Each call
// works on a private accumulator and returns an independent result.
type Extractor struct {
	log *zap.Logger
}

// NewExtractor constructs an Extractor with the given logging sink.
func NewExtractor(log *zap.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns a mapping from normalized person name to Person aggregate.
//
// For every meeting, in meeting-array order, it visits the host, the
// documenter, each entry of peoplePresent, and each action item assignee.
// Roles accumulate per workgroup; attended and assigned lists are
// de-duplicated in visit order. Names are never merged across variants.
func (e *Extractor) Extract(meetings []*entities.Meeting) map[string]*entities.Person {
	byName, _ := e.extract(meetings)
	return byName
}

// List returns the Person aggregates in first-encounter order.
func (e *Extractor) List(meetings []*entities.Meeting) []*entities.Person {
	byName, order := e.extract(meetings)
	out := make([]*entities.Person, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func (e *Extractor) extract(meetings []*entities.Meeting) (map[string]*entities.Person, []string) {
	byName := make(map[string]*entities.Person)
	order := make([]string, 0)

	getOrCreate := func(name string) *entities.Person {
		if person, ok := byName[name]; ok {
			return person
		}
		person, err := entities.NewPerson(name)
		if err != nil {
			return nil
		}
		byName[name] = person
		order = append(order, name)
		return person
	}

	for _, meeting := range meetings {
		if name := textutil.NormalizeName(meeting.Host); name != "" {
			person := getOrCreate(name)
			person.AddWorkgroup(meeting.WorkgroupID, entities.RoleHost)
			person.AddMeeting(meeting.ID)
		}

		if name := textutil.NormalizeName(meeting.Documenter); name != "" {
			person := getOrCreate(name)
			person.AddWorkgroup(meeting.WorkgroupID, entities.RoleDocumenter)
			person.AddMeeting(meeting.ID)
		}

		for _, raw := range meeting.PeoplePresent {
			name := textutil.NormalizeName(raw)
			if name == "" {
				continue
			}
			person := getOrCreate(name)
			person.AddWorkgroup(meeting.WorkgroupID, entities.RoleParticipant)
			person.AddMeeting(meeting.ID)
		}

		for _, action := range meeting.ActionItems {
			name := textutil.NormalizeName(action.Assignee)
			if name == "" {
				continue
			}
			person := getOrCreate(name)
			person.AddWorkgroup(meeting.WorkgroupID, entities.RoleParticipant)
			person.AddMeeting(meeting.ID)
			person.AddActionItem(action.ID)
		}
	}

	e.log.Info("extracted people",
		zap.Int("people", len(byName)),
		zap.Int("meetings", len(meetings)),
	)
	return byName, order
}
