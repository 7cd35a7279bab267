// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/catalog"
	"github.com/tomtom215/fitcurator/internal/media"
	"github.com/tomtom215/fitcurator/internal/models"
)

var (
	// ErrNoCategories is returned when a request names no categories.
	ErrNoCategories = errors.New("no categories requested")
	// ErrAllCategoriesFailed is matched by AllCategoriesFailedError.
	ErrAllCategoriesFailed = errors.New("all categories failed")
)

// AllCategoriesFailedError reports a run in which every category failed to fetch.
type AllCategoriesFailedError struct {
	CategoryErrors map[string]string
}

func (e *AllCategoriesFailedError) Error() string {
	keys := make([]string, 0, len(e.CategoryErrors))
	for k := range e.CategoryErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.CategoryErrors[k])
	}
	return fmt.Sprintf("%s (%s)", ErrAllCategoriesFailed, strings.Join(parts, "; "))
}

func (e *AllCategoriesFailedError) Is(target error) bool {
	return target == ErrAllCategoriesFailed
}

// Stage is the lifecycle position of one category within a run.
type Stage int

const (
	StagePending Stage = iota
	StageFetching
	StageFiltering
	StageRepairing
	StageShaped
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageFetching:
		return "fetching"
	case StageFiltering:
		return "filtering"
	case StageRepairing:
		return "repairing"
	case StageShaped:
		return "shaped"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RepairAction is what happened to one item during the repair stage.
type RepairAction string

const (
	ActionKept       RepairAction = "kept"
	ActionReplaced   RepairAction = "replaced"
	ActionUnrepaired RepairAction = "unrepaired"
)

// RepairOutcome is the repaired item together with the action taken.
type RepairOutcome struct {
	Item   models.CandidateItem
	Action RepairAction
}

// Request asks for recommendations for one subject.
type Request struct {
	SubjectID    string
	CategoryKeys []string
	Attributes   models.SubjectAttributes
}

// Output is the result of a run. Results are ordered by category key.
// CategoryErrors maps each failed category to "<kind>: <message>".
type Output struct {
	Results        []models.PipelineResult `json:"results"`
	CategoryErrors map[string]string       `json:"category_errors"`
	Cached         bool                    `json:"cached"`
}

func (o *Output) clone() *Output {
	out := &Output{
		Results:        make([]models.PipelineResult, len(o.Results)),
		CategoryErrors: make(map[string]string, len(o.CategoryErrors)),
		Cached:         o.Cached,
	}
	for i := range o.Results {
		out.Results[i] = o.Results[i].Clone()
	}
	for k, v := range o.CategoryErrors {
		out.CategoryErrors[k] = v
	}
	return out
}

// Health is the operational snapshot exposed by the health endpoint.
type Health struct {
	Cache       cache.Stats        `json:"cache"`
	RateLimiter catalog.RateStatus `json:"rate_limiter"`
	Providers   map[string]bool    `json:"providers"`
	Breaker     string             `json:"circuit_breaker,omitempty"`
}

// FallbackResolver finds replacement media for an item.
type FallbackResolver interface {
	Resolve(ctx context.Context, terms media.QueryTerms, limit int) media.Resolution
	Providers() map[string]bool
}

// LinkChecker reports whether a media URL is reachable.
type LinkChecker interface {
	Probe(ctx context.Context, rawURL string) bool
}

// Deps are the collaborators an Engine needs. All are required.
type Deps struct {
	Catalog  catalog.Fetcher
	Resolver FallbackResolver
	Prober   LinkChecker
	Cache    *cache.BoundedCache
}

// Config tunes an Engine. Zero values select the defaults.
type Config struct {
	FetchLimit          int           // items requested per category (default 10)
	RepairConcurrency   int           // concurrent repairs per category, 0 = one per item
	MaxItemsPerCategory int           // truncate shaped results, 0 = no truncation
	FallbackLimit       int           // media results requested per repair (default 1)
	ResultsTTL          time.Duration // memoized output lifetime (default 15m)
	Rules               FilterRules   // nil = DefaultFilterRules()
}

const (
	DefaultFetchLimit    = 10
	DefaultFallbackLimit = 1
	DefaultResultsTTL    = 15 * time.Minute
)

func (c Config) withDefaults() Config {
	if c.FetchLimit <= 0 {
		c.FetchLimit = DefaultFetchLimit
	}
	if c.FallbackLimit <= 0 {
		c.FallbackLimit = DefaultFallbackLimit
	}
	if c.ResultsTTL <= 0 {
		c.ResultsTTL = DefaultResultsTTL
	}
	if c.Rules == nil {
		c.Rules = DefaultFilterRules()
	}
	return c
}
