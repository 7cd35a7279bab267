// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package validation

import (
	"strings"
	"testing"
)

type wireItem struct {
	ID     string `json:"exerciseId" validate:"required"`
	Name   string `json:"name" validate:"required,max=200"`
	GifURL string `json:"gifUrl" validate:"omitempty,url"`
}

type request struct {
	SubjectID  string   `json:"subject_id" validate:"required,max=128"`
	Categories []string `json:"categories" validate:"required,min=1,max=10,dive,category_key"`
	Nested     nested   `json:"attributes"`
}

type nested struct {
	Level string `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&wireItem{ID: "1", Name: "push up", GifURL: "https://m.test/1.gif"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := &request{SubjectID: "u1", Categories: []string{"chest", "upper legs", "lower_arms"}}
	if err := ValidateStruct(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&wireItem{Name: "x", GifURL: "not a url"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("fields = %+v, want 2 failures", err.Fields)
	}
	if err.Fields[0].Field != "exerciseId" || err.Fields[0].Message != "exerciseId is required" {
		t.Errorf("first failure = %+v", err.Fields[0])
	}
	if err.Fields[1].Tag != "url" {
		t.Errorf("second failure tag = %q, want url", err.Fields[1].Tag)
	}
}

func TestCategoryKeyRule(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"chest":      true,
		"upper legs": true,
		"lower_arms": true,
		"Chest":      false,
		"chest!":     false,
		" chest":     false,
		"":           false,
	}
	for key, ok := range tests {
		err := ValidateStruct(&request{SubjectID: "u", Categories: []string{key}})
		if (err == nil) != ok {
			t.Errorf("category %q: err = %v, want ok=%v", key, err, ok)
		}
	}
}

func TestNestedFieldPath(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&request{SubjectID: "u", Categories: []string{"chest"}, Nested: nested{Level: "elite"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Fields[0].Field; got != "attributes.fitness_level" {
		t.Errorf("field = %q, want attributes.fitness_level", got)
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&request{})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("details missing fields")
	}
}
