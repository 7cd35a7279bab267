// Fitcurator - Activity Recommendation Assembly
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fitcurator

package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed catalog request.
type ErrorKind string

const (
	KindRateLimitExceeded ErrorKind = "rate_limit_exceeded"
	KindTimeout           ErrorKind = "timeout"
	KindUpstream          ErrorKind = "upstream_error"
	KindTransport         ErrorKind = "transport_error"
	KindMalformed         ErrorKind = "malformed_response"
)

// Sentinels for errors.Is. Every *FetchError matches the sentinel of its kind.
var (
	ErrRateLimitExceeded = errors.New("catalog rate limit exceeded")
	ErrTimeout           = errors.New("catalog request timed out")
	ErrUpstream          = errors.New("catalog upstream error")
	ErrTransport         = errors.New("catalog transport error")
	ErrMalformedResponse = errors.New("catalog response malformed")
)

var kindSentinels = map[ErrorKind]error{
	KindRateLimitExceeded: ErrRateLimitExceeded,
	KindTimeout:           ErrTimeout,
	KindUpstream:          ErrUpstream,
	KindTransport:         ErrTransport,
	KindMalformed:         ErrMalformedResponse,
}

// FetchError is returned by every failed catalog call. StatusCode is set for
// KindUpstream responses that carried an HTTP status.
type FetchError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s: %s (status %d): %s", e.Endpoint, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("catalog %s: %s: %s", e.Endpoint, e.Kind, msg)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *FetchError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// Reason is the short "<kind>: <message>" form recorded per failed category.
func (e *FetchError) Reason() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// KindOf extracts the kind of a *FetchError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}
