// Package topics collects topic strings across meetings, in both their
// display form and their normalized matching form.
package topics

import (
	"sort"

	"github.com/archivelab/meeting-archive/internal/domain/entities"
	"github.com/archivelab/meeting-archive/pkg/textutil"
)

// Extractor derives topic views from a meeting collection.
type Extractor struct{}

// NewExtractor constructs an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the sorted unique topic strings in display case.
// Deduplication is by exact string equality, so "AI" and "ai" both survive.
func (e *Extractor) Extract(meetings []*entities.Meeting) []string {
	seen := make(map[string]struct{})
	for _, meeting := range meetings {
		for _, topic := range meeting.TopicsCovered {
			seen[topic] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for topic := range seen {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// ExtractNormalized returns the set of lower-cased, trimmed topic strings
// used as matching keys.
func (e *Extractor) ExtractNormalized(meetings []*entities.Meeting) map[string]struct{} {
	out := make(map[string]struct{})
	for _, meeting := range meetings {
		for _, topic := range textutil.NormalizeTopics(meeting.TopicsCovered) {
			out[topic] = struct{}{}
		}
	}
	return out
}

// Aggregate materializes a Topic view per normalized topic: the meetings that
// mention it, the workgroups that discussed it, and its co-occurrence counts
// with other topics. Topics are returned sorted by name.
func (e *Extractor) Aggregate(meetings []*entities.Meeting) []*entities.Topic {
	byName := make(map[string]*entities.Topic)

	getOrCreate := func(name string) *entities.Topic {
		if topic, ok := byName[name]; ok {
			return topic
		}
		topic := entities.NewTopic(name)
		byName[name] = topic
		return topic
	}

	for _, meeting := range meetings {
		normalized := uniqueNormalized(meeting.TopicsCovered)
		for i, name := range normalized {
			topic := getOrCreate(name)
			topic.AddMeeting(meeting.ID)
			topic.AddWorkgroup(meeting.WorkgroupID)

			for j, other := range normalized {
				if i == j {
					continue
				}
				topic.AddCoOccurrence(other)
			}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*entities.Topic, 0, len(names))
	for _, name := range names {
		out = append(out, byName[name])
	}
	return out
}

// uniqueNormalized normalizes a meeting's topic list and removes duplicates
// so a topic listed twice does not pair with itself.
func uniqueNormalized(topics []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(topics))
	for _, topic := range textutil.NormalizeTopics(topics) {
		if _, ok := seen[topic]; ok {
			continue
		}
		seen[topic] = struct{}{}
		out = append(out, topic)
	}
	return out
}
