// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package media

import (
	"strings"
	"unicode"
)

// DefaultQualifier is appended to every query unless another is configured.
const DefaultQualifier = "exercise"

const maxRegionTerms = 2

// noiseWords are catalog naming fillers that only hurt media search relevance.
var noiseWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "with": {}, "on": {}, "of": {},
	"in": {}, "to": {}, "for": {}, "at": {}, "v": {}, "version": {},
	"variation": {}, "alternate": {}, "alt": {}, "male": {}, "female": {},
}

// QueryTerms identifies the item a fallback is being looked up for.
type QueryTerms struct {
	Name    string
	Regions []string
}

// BuildQuery turns an item name and its body regions into a search query:
// lowercased, punctuation and noise words removed, up to two region terms not
// already in the name, then the qualifier. An empty qualifier means
// DefaultQualifier. Duplicate words are dropped.
func BuildQuery(name string, regions []string, qualifier string) string {
	if qualifier == "" {
		qualifier = DefaultQualifier
	}

	var words []string
	seen := make(map[string]struct{})
	add := func(w string) {
		if _, dup := seen[w]; dup {
			return
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	for _, w := range tokenize(name) {
		if _, noise := noiseWords[w]; noise {
			continue
		}
		add(w)
	}

	added := 0
	for _, region := range regions {
		if added == maxRegionTerms {
			break
		}
		terms := tokenize(region)
		if len(terms) == 0 || allSeen(seen, terms) {
			continue
		}
		for _, w := range terms {
			add(w)
		}
		added++
	}

	for _, w := range tokenize(qualifier) {
		add(w)
	}
	return strings.Join(words, " ")
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func allSeen(seen map[string]struct{}, words []string) bool {
	for _, w := range words {
		if _, ok := seen[w]; !ok {
			return false
		}
	}
	return true
}
