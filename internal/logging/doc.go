// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Logging conventions used across Fitcurator:
//
//   - Terminate every chain with Msg or Send, otherwise nothing is written.
//   - Use typed fields (Str, Int, Dur) rather than Msgf.
//   - Degraded-but-handled outcomes (a broken media link, a provider miss)
//     log at debug; a failed category logs at warn; a failed run at error.
//   - Never log provider credentials. Config only ever logs whether a key
//     is present.

package logging
