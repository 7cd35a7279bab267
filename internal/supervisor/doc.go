// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

// Package supervisor runs long-lived services under a thejerf/suture/v4 tree.
// Failed services are restarted with backoff and shutdown is bounded per
// service. Events are logged through sutureslog using the zerolog-backed
// slog logger from the logging package.
package supervisor
