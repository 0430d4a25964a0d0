// Package textutil holds string normalization helpers shared by the archive
// pipeline: comma-list splitting, name normalization, and topic case folding.
package textutil

import "strings"

// SplitCommaList parses a comma-separated string into a list of trimmed,
// non-empty elements. A nil or empty input yields an empty list.
func SplitCommaList(text string) []string {
	if text == "" {
		return []string{}
	}

	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeName normalizes a person's name for consistent matching.
//
// Bracketed affiliation suffixes like "Stephen [QADAO]" are kept as part of
// the name. Two records that differ only by suffix stay distinct people.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeTopic returns the matching form of a topic: trimmed and lower-cased.
// The display form keeps its original case elsewhere.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// NormalizeTopics normalizes a list of topics, dropping blank entries.
func NormalizeTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		if strings.TrimSpace(topic) == "" {
			continue
		}
		out = append(out, NormalizeTopic(topic))
	}
	return out
}
