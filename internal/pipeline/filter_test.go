// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package pipeline

import (
	"testing"

	"github.com/tomtom215/fitcurator/internal/models"
)

func TestFilterRulesApply(t *testing.T) {
	t.Parallel()

	items := []models.CandidateItem{
		{ID: "1", Name: "Barbell Full Squat", BodyRegions: []string{"upper legs"}},
		{ID: "2", Name: "seated leg curl", BodyRegions: []string{"upper legs"}},
		{ID: "3", Name: "Jump Rope", BodyRegions: []string{"cardio"}},
		{ID: "4", Name: "neck side stretch", BodyRegions: []string{"neck"}},
		{ID: "5", Name: "dead bug", BodyRegions: []string{"waist"}},
	}

	tests := []struct {
		name       string
		rules      FilterRules
		conditions []string
		wantIDs    []string
	}{
		{"no conditions", DefaultFilterRules(), nil, []string{"1", "2", "3", "4", "5"}},
		{"knee injury", DefaultFilterRules(), []string{"knee_injury"}, []string{"2", "4", "5"}},
		{"condition case and space", DefaultFilterRules(), []string{" Knee_Injury "}, []string{"2", "4", "5"}},
		{"unknown condition", DefaultFilterRules(), []string{"sprained_ego"}, []string{"1", "2", "3", "4", "5"}},
		{"matches body region", FilterRules{"neck_strain": {"neck"}}, []string{"neck_strain"}, []string{"1", "2", "3", "5"}},
		{"multiple conditions", FilterRules{"a": {"curl"}, "b": {"bug"}}, []string{"a", "b"}, []string{"1", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.rules.Apply(items, tt.conditions)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d items, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterRulesApplyDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	items := []models.CandidateItem{{ID: "1", Name: "push-up"}, {ID: "2", Name: "bench press"}}
	out := DefaultFilterRules().Apply(items, []string{"wrist_pain"})

	if len(out) != 1 || out[0].ID != "2" {
		t.Errorf("out = %+v", out)
	}
	if len(items) != 2 || items[0].ID != "1" {
		t.Errorf("input modified: %+v", items)
	}
}

func TestDefaultFilterRulesCoverConditions(t *testing.T) {
	t.Parallel()

	rules := DefaultFilterRules()
	for _, c := range []string{"lower_back_pain", "knee_injury", "shoulder_injury", "wrist_pain", "pregnancy", "hypertension"} {
		if len(rules[c]) == 0 {
			t.Errorf("no exclusion terms for %s", c)
		}
	}
}
