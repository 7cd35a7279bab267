// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/fitcurator/internal/logging"
	"github.com/tomtom215/fitcurator/internal/media"
	"github.com/tomtom215/fitcurator/internal/metrics"
	"github.com/tomtom215/fitcurator/internal/models"
)

// repairItems repairs every item concurrently. outcomes[i] always
// corresponds to items[i].
func (e *Engine) repairItems(ctx context.Context, items []models.CandidateItem) []RepairOutcome {
	outcomes := make([]RepairOutcome, len(items))
	if len(items) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if e.cfg.RepairConcurrency > 0 {
		g.SetLimit(e.cfg.RepairConcurrency)
	}
	for i := range items {
		g.Go(func() error {
			outcomes[i] = e.repairOne(ctx, items[i])
			return nil
		})
	}
	_ = g.Wait() // repairOne never fails

	return outcomes
}

// repairOne keeps an item with a healthy link, swaps in fallback media for a
// dead one, or flags it when no fallback exists. Running it on its own output
// yields the same item.
func (e *Engine) repairOne(ctx context.Context, item models.CandidateItem) RepairOutcome {
	if item.MediaURL != "" && e.prober.Probe(ctx, item.MediaURL) {
		metrics.RecordRepair(string(ActionKept))
		return RepairOutcome{Item: item, Action: ActionKept}
	}

	res := e.resolver.Resolve(ctx, media.QueryTerms{Name: item.Name, Regions: item.BodyRegions}, e.cfg.FallbackLimit)
	if res.Success && len(res.Items) > 0 {
		metrics.RecordRepair(string(ActionReplaced))
		return RepairOutcome{Item: item.WithFallback(res.Items[0]), Action: ActionReplaced}
	}

	log := logging.CtxWith(ctx, e.logger)
	log.Debug().
		Str("item_id", item.ID).
		Str("media_url", item.MediaURL).
		Msg("no fallback media found, keeping item")
	metrics.RecordRepair(string(ActionUnrepaired))
	return RepairOutcome{Item: item.WithBrokenMedia(), Action: ActionUnrepaired}
}
