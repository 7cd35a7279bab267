// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package models

import (
	"reflect"
	"testing"
)

func sampleItem() CandidateItem {
	return CandidateItem{
		ID:            "0025",
		Name:          "barbell bench press",
		MediaURL:      "https://media.test/0025.gif",
		Instructions:  []string{"Lie on the bench.", "Press the bar."},
		TargetMuscles: []string{"pectorals"},
		BodyRegions:   []string{"chest"},
		Equipment:     []string{"barbell"},
	}
}

func TestCandidateItemCloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := sampleItem()
	cp := orig.Clone()
	cp.BodyRegions[0] = "back"
	cp.Instructions[0] = "changed"

	if orig.BodyRegions[0] != "chest" || orig.Instructions[0] != "Lie on the bench." {
		t.Error("Clone shares backing arrays with the original")
	}
}

func TestWithFallbackKeepsOriginal(t *testing.T) {
	t.Parallel()

	orig := sampleItem()
	repaired := orig.WithFallback(FallbackMedia{ID: "g1", URL: "https://giphy.test/g1.gif", Provider: "giphy"})

	if orig.MediaURL != "https://media.test/0025.gif" || orig.Repaired() {
		t.Error("original item was modified")
	}
	if repaired.MediaURL != "https://giphy.test/g1.gif" {
		t.Errorf("MediaURL = %q", repaired.MediaURL)
	}
	if repaired.FallbackSource != "giphy" || repaired.FallbackID != "g1" || !repaired.Repaired() {
		t.Errorf("provenance not set: %+v", repaired)
	}
	repaired.FallbackSource, repaired.FallbackID, repaired.MediaURL = "", "", orig.MediaURL
	if !reflect.DeepEqual(repaired, orig) {
		t.Error("fields other than media and provenance changed")
	}
}

func TestWithBrokenMedia(t *testing.T) {
	t.Parallel()

	orig := sampleItem()
	flagged := orig.WithBrokenMedia()
	if !flagged.MediaBroken || orig.MediaBroken {
		t.Errorf("flag placement wrong: orig=%v flagged=%v", orig.MediaBroken, flagged.MediaBroken)
	}
	if flagged.MediaURL != orig.MediaURL {
		t.Error("broken media must keep the original link")
	}
}

func TestCloneItemsNil(t *testing.T) {
	t.Parallel()

	if CloneItems(nil) != nil {
		t.Error("CloneItems(nil) should be nil")
	}
}

func TestSubjectAttributesNormalized(t *testing.T) {
	t.Parallel()

	a := SubjectAttributes{
		Conditions:   []string{" Knee_Injury", "lower_back_pain", "knee_injury", ""},
		FitnessLevel: " Beginner ",
	}
	got := a.Normalized()
	want := SubjectAttributes{
		Conditions:   []string{"knee_injury", "lower_back_pain"},
		FitnessLevel: "beginner",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalized = %+v, want %+v", got, want)
	}
}
