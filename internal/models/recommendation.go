// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package models

import (
	"slices"
	"strings"
	"time"
)

// CandidateItem is one exercise as fetched from the catalog and carried
// through filtering, repair and shaping.
//
// FallbackSource and FallbackID are set only when the media URL was replaced
// by a fallback provider. MediaBroken marks an item whose media link failed
// the health probe and for which no fallback was found; the item is kept.
type CandidateItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	MediaURL       string   `json:"media_url"`
	Instructions   []string `json:"instructions,omitempty"`
	TargetMuscles  []string `json:"target_muscles,omitempty"`
	BodyRegions    []string `json:"body_regions,omitempty"`
	Equipment      []string `json:"equipment,omitempty"`
	FallbackSource string   `json:"fallback_source,omitempty"`
	FallbackID     string   `json:"fallback_id,omitempty"`
	MediaBroken    bool     `json:"media_broken,omitempty"`
}

// Clone returns a deep copy of the item.
func (c CandidateItem) Clone() CandidateItem {
	c.Instructions = slices.Clone(c.Instructions)
	c.TargetMuscles = slices.Clone(c.TargetMuscles)
	c.BodyRegions = slices.Clone(c.BodyRegions)
	c.Equipment = slices.Clone(c.Equipment)
	return c
}

// WithFallback returns a copy whose media points at m, with provenance set.
func (c CandidateItem) WithFallback(m FallbackMedia) CandidateItem {
	out := c.Clone()
	out.MediaURL = m.URL
	out.FallbackSource = m.Provider
	out.FallbackID = m.ID
	out.MediaBroken = false
	return out
}

// WithBrokenMedia returns a copy flagged as carrying an unreachable link.
func (c CandidateItem) WithBrokenMedia() CandidateItem {
	out := c.Clone()
	out.MediaBroken = true
	return out
}

// Repaired reports whether the media URL came from a fallback provider.
func (c CandidateItem) Repaired() bool {
	return c.FallbackSource != ""
}

// CloneItems deep-copies a slice of items. A nil slice stays nil.
func CloneItems(items []CandidateItem) []CandidateItem {
	if items == nil {
		return nil
	}
	out := make([]CandidateItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

// FallbackMedia is a media descriptor produced by a fallback provider.
type FallbackMedia struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Provider   string `json:"provider"`
	PreviewURL string `json:"preview_url,omitempty"`
}

// PipelineResult holds the shaped items of one category, in catalog order.
type PipelineResult struct {
	CategoryKey string          `json:"category_key"`
	Items       []CandidateItem `json:"items"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Clone returns a deep copy of the result.
func (r PipelineResult) Clone() PipelineResult {
	r.Items = CloneItems(r.Items)
	return r
}

// SubjectAttributes describes the requesting subject. Conditions name the
// exclusion rules applied during filtering; every field contributes to the
// result cache key.
type SubjectAttributes struct {
	Conditions   []string `json:"conditions,omitempty" validate:"omitempty,dive,required,max=64"`
	FitnessLevel string   `json:"fitness_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Equipment    []string `json:"equipment,omitempty" validate:"omitempty,dive,required,max=64"`
}

// Normalized returns a copy with lowercased, trimmed, sorted and
// de-duplicated lists so that equivalent attributes fingerprint equally.
func (a SubjectAttributes) Normalized() SubjectAttributes {
	return SubjectAttributes{
		Conditions:   normalizeList(a.Conditions),
		FitnessLevel: strings.ToLower(strings.TrimSpace(a.FitnessLevel)),
		Equipment:    normalizeList(a.Equipment),
	}
}

func normalizeList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
