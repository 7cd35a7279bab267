// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package pipeline

import (
	"strings"

	"github.com/tomtom215/fitcurator/internal/models"
)

// FilterRules maps a condition name to exclusion terms. An item is excluded
// when any term of any active condition occurs, case-insensitively, in its
// name or in one of its body regions. Terms must be lowercase.
type FilterRules map[string][]string

// DefaultFilterRules returns the built-in exclusion table.
func DefaultFilterRules() FilterRules {
	return FilterRules{
		"lower_back_pain": {"deadlift", "good morning", "bent over", "hyperextension", "sit-up", "superman"},
		"knee_injury":     {"jump", "lunge", "squat", "burpee", "step-up", "pistol"},
		"shoulder_injury": {"overhead", "military press", "upright row", "behind neck", "handstand", "snatch"},
		"wrist_pain":      {"push-up", "push up", "plank", "handstand", "front squat", "wrist"},
		"pregnancy":       {"crunch", "sit-up", "v-up", "jackknife", "jump", "burpee"},
		"hypertension":    {"isometric", "handstand", "headstand", "inverted", "hold"},
	}
}

// Apply returns the items that no active condition excludes, in their
// original order. Unknown conditions are ignored. The input is not modified.
func (r FilterRules) Apply(items []models.CandidateItem, conditions []string) []models.CandidateItem {
	terms := r.activeTerms(conditions)
	out := make([]models.CandidateItem, 0, len(items))
	for _, item := range items {
		if !excluded(item, terms) {
			out = append(out, item)
		}
	}
	return out
}

func (r FilterRules) activeTerms(conditions []string) []string {
	var terms []string
	for _, c := range conditions {
		terms = append(terms, r[strings.ToLower(strings.TrimSpace(c))]...)
	}
	return terms
}

func excluded(item models.CandidateItem, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	fields := make([]string, 0, 1+len(item.BodyRegions))
	fields = append(fields, strings.ToLower(item.Name))
	for _, region := range item.BodyRegions {
		fields = append(fields, strings.ToLower(region))
	}
	for _, term := range terms {
		for _, f := range fields {
			if strings.Contains(f, term) {
				return true
			}
		}
	}
	return false
}
