package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance
var tagPunctuationRegex = regexp.MustCompile(`[^\w\s-]`)

// normalizeTags lowercases tags, strips punctuation, and removes duplicates
// and empty entries so overlap scoring compares like with like regardless of
// how the provider or catalog spells them ("Denim", "denim!", "denim").
func normalizeTags(tags []string) []string {
	var normalized []string
	seen := make(map[string]bool)
	for _, tag := range tags {
		cleaned := tagPunctuationRegex.ReplaceAllString(strings.ToLower(tag), "")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		normalized = append(normalized, cleaned)
	}
	return normalized
}

// sharedTags returns the tags present in both sets, preserving the order of
// the first set for deterministic explanations
func sharedTags(a, b []string) []string {
	set := make(map[string]bool)
	for _, tag := range b {
		set[tag] = true
	}

	var shared []string
	for _, tag := range a {
		if set[tag] {
			shared = append(shared, tag)
		}
	}
	return shared
}

// overlapScore computes |a ∩ b| / max(|a|, |b|). Normalizing by the larger
// set keeps a candidate from scoring 1.0 against a much longer tag list just
// by covering a short preference set.
func overlapScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}

	return float64(len(sharedTags(a, b))) / float64(larger)
}
