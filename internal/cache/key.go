// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// GenerateKey builds a namespaced key from arbitrary parameters. The
// parameters are JSON encoded (map keys sorted) and hashed, so equal inputs
// always produce the same key.
//
//	cache.GenerateKey("fallback", map[string]any{"q": "push up chest", "limit": 1})
func GenerateKey(namespace string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", namespace, params)
	}
	hash := sha256.Sum256(data)
	return namespace + ":" + hex.EncodeToString(hash[:16])
}

// Fingerprint returns a deterministic 32 character hex digest of parts.
// Callers are responsible for normalizing order-insensitive inputs (for
// example sorting a slice) before passing them in.
func Fingerprint(parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		data = []byte(fmt.Sprint(parts...))
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}
