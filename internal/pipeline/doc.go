// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

/*
Package pipeline assembles recommendations for a subject.

For every requested category the Engine moves through fixed stages:

	Pending -> Fetching -> Filtering -> Repairing -> Shaped
	              |
	              +-> Failed

Fetching asks the catalog for items matching the category. Categories are
fetched one after another; a failed fetch marks only that category Failed and
records the classified reason in Output.CategoryErrors.

Filtering drops items excluded by the subject's conditions using a
FilterRules table. It is pure and keeps catalog order.

Repairing probes every surviving item's media link concurrently. Healthy links
are kept. Dead links are replaced from the media fallback resolver; when no
fallback exists the item is kept and flagged MediaBroken. Each goroutine
writes its RepairOutcome back by index, so output order equals input order.

Shaped results are memoized in the shared BoundedCache under

	pipeline:<subjectID>:<fingerprint of sorted categories and attributes>

and a later Run with equivalent input returns them without touching any
collaborator. Run fails with ErrAllCategoriesFailed only when no category
produced a result.
*/
package pipeline
