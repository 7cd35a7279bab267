// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package pipeline

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/fitcurator/internal/cache"
	"github.com/tomtom215/fitcurator/internal/catalog"
	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/metrics"
	"github.com/tomtom215/fitcurator/internal/models"
)

// KeyNamespace prefixes memoized pipeline outputs.
const KeyNamespace = "pipeline"

// Engine runs the fetch, filter, repair and shape stages.
type Engine struct {
	catalog  catalog.Fetcher
	resolver FallbackResolver
	prober   LinkChecker
	cache    *cache.BoundedCache
	cfg      Config
	logger   zerolog.Logger
	now      func() time.Time
}

// categoryOutcome is the typed result of one category's pass through the stages.
type categoryOutcome struct {
	key     string
	stage   Stage
	reason  string
	result  models.PipelineResult
	repairs map[RepairAction]int
}

// NewEngine wires an engine. Every dependency in deps is required.
func NewEngine(deps Deps, cfg Config) (*Engine, error) {
	switch {
	case deps.Catalog == nil:
		return nil, errors.New("pipeline: catalog is required")
	case deps.Resolver == nil:
		return nil, errors.New("pipeline: resolver is required")
	case deps.Prober == nil:
		return nil, errors.New("pipeline: prober is required")
	case deps.Cache == nil:
		return nil, errors.New("pipeline: cache is required")
	}

	return &Engine{
		catalog:  deps.Catalog,
		resolver: deps.Resolver,
		prober:   deps.Prober,
		cache:    deps.Cache,
		cfg:      cfg.withDefaults(),
		logger:   logging.WithComponent("pipeline"),
		now:      time.Now,
	}, nil
}

// Run assembles recommendations for req. Partial failure is not an error:
// failed categories appear in Output.CategoryErrors. Run returns an
// *AllCategoriesFailedError when no category could be fetched.
//
// Only outputs in which every category succeeded are memoized.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Run(ctx context.Context, req Request) (*Output, error) {
	start := time.Now()
	categories := normalizeCategories(req.CategoryKeys)
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	ctx = logging.EnsureCorrelationID(ctx)
	attrs := req.Attributes.Normalized()
	key := e.resultKey(req.SubjectID, categories, attrs)
	log := logging.CtxWith(ctx, e.logger).With().
		Str("subject_id", req.SubjectID).
		Strs("categories", categories).
		Logger()

	if out, ok := e.cachedOutput(key); ok {
		metrics.RecordPipelineRun("cached", 0)
		log.Debug().Msg("serving memoized recommendations")
		return out, nil
	}

	out := &Output{
		Results:        make([]models.PipelineResult, 0, len(categories)),
		CategoryErrors: make(map[string]string),
	}
	for _, cat := range categories {
		oc := e.runCategory(ctx, cat, attrs)
		if oc.stage == StageFailed {
			out.CategoryErrors[cat] = oc.reason
			log.Warn().Str("category", cat).Str("reason", oc.reason).Msg("category failed")
			continue
		}
		out.Results = append(out.Results, oc.result)
		log.Debug().
			Str("category", cat).
			Str("stage", oc.stage.String()).
			Int("items", len(oc.result.Items)).
			Int("replaced", oc.repairs[ActionReplaced]).
			Int("unrepaired", oc.repairs[ActionUnrepaired]).
			Msg("category shaped")
	}

	if len(out.Results) == 0 {
		metrics.RecordPipelineRun("failed", time.Since(start))
		return nil, &AllCategoriesFailedError{CategoryErrors: out.CategoryErrors}
	}

	outcome := "success"
	if len(out.CategoryErrors) > 0 {
		// Partial results are served but not memoized so failed categories
		// are retried on the next request.
		outcome = "partial"
	} else {
		e.cache.Set(key, out.clone(), e.cfg.ResultsTTL)
	}
	metrics.RecordPipelineRun(outcome, time.Since(start))
	log.Info().
		Int("results", len(out.Results)).
		Int("failed", len(out.CategoryErrors)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations assembled")

	return out, nil
}

func (e *Engine) runCategory(ctx context.Context, cat string, attrs models.SubjectAttributes) categoryOutcome {
	oc := categoryOutcome{key: cat, stage: StagePending}

	oc.stage = StageFetching
	items, err := e.catalog.SearchItems(ctx, searchTerm(cat), e.cfg.FetchLimit)
	if err != nil {
		oc.stage = StageFailed
		oc.reason = failureReason(err)
		return oc
	}

	oc.stage = StageFiltering
	items = e.cfg.Rules.Apply(items, attrs.Conditions)

	oc.stage = StageRepairing
	outcomes := e.repairItems(ctx, items)

	oc.stage = StageShaped
	oc.repairs = make(map[RepairAction]int, 3)
	shaped := make([]models.CandidateItem, len(outcomes))
	for i, o := range outcomes {
		shaped[i] = o.Item
		oc.repairs[o.Action]++
	}
	if n := e.cfg.MaxItemsPerCategory; n > 0 && len(shaped) > n {
		shaped = shaped[:n]
	}
	oc.result = models.PipelineResult{CategoryKey: cat, Items: shaped, GeneratedAt: e.now().UTC()}
	return oc
}

func (e *Engine) cachedOutput(key string) (*Output, bool) {
	v, ok := e.cache.Get(key)
	if !ok {
		return nil, false
	}
	stored, ok := v.(*Output)
	if !ok {
		return nil, false
	}
	out := stored.clone()
	out.Cached = true
	return out, true
}

// resultKey identifies a memoized output. Category order and attribute list
// order do not affect it.
func (e *Engine) resultKey(subjectID string, sortedCategories []string, attrs models.SubjectAttributes) string {
	return subjectPrefix(subjectID) + cache.Fingerprint(sortedCategories, attrs)
}

// subjectPrefix escapes subjectID so one subject's prefix never matches
// another subject's keys ("a" vs "a:b").
func subjectPrefix(subjectID string) string {
	return KeyNamespace + ":" + url.QueryEscape(subjectID) + ":"
}

// InvalidateSubject drops every memoized output for subjectID and returns
// how many were removed.
func (e *Engine) InvalidateSubject(subjectID string) int {
	if subjectID == "" {
		return 0
	}
	n := e.cache.InvalidateByPrefix(subjectPrefix(subjectID))
	e.logger.Debug().Str("subject_id", subjectID).Int("invalidated", n).Msg("subject cache invalidated")
	return n
}

// HealthStatus reports cache statistics, catalog quota usage and fallback
// provider configuration.
func (e *Engine) HealthStatus() Health {
	h := Health{
		Cache:       e.cache.Stats(),
		RateLimiter: e.catalog.Status(),
		Providers:   e.resolver.Providers(),
	}
	if b, ok := e.catalog.(interface{ State() string }); ok {
		h.Breaker = b.State()
	}
	return h
}

// normalizeCategories lowercases, de-duplicates and sorts category keys.
func normalizeCategories(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// searchTerm maps a category key such as "upper_legs" to the catalog's
// search vocabulary ("upper legs").
func searchTerm(cat string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(cat)
}

func failureReason(err error) string {
	var fe *catalog.FetchError
	if errors.As(err, &fe) {
		return fe.Reason()
	}
	return err.Error()
}
