// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// A Result is what a transport hands back after a completed exchange.
//
// A transport only produces a Result when the host reported an HTTP
// response, whatever its status code. Transport-level failures are
// reported as errors instead.
type Result struct {
	// StatusCode is the HTTP status code reported by the host.
	StatusCode int

	// Status is the status line text reported by the host, e.g.
	// "200 OK". It may be empty if the host does not expose it.
	Status string

	// URL is the final URL of the exchange as reported by the host,
	// after any redirects the host followed. It may be empty.
	URL string

	// RawHeader is the response header block exactly as the host
	// exposes it: one "Name: value" field per line, lines separated
	// by CRLF or LF.
	RawHeader string

	// Body is the complete response body.
	Body []byte
}

// An Exchange represents the state of a single Spec execution.
//
// The adapter creates an Exchange for every call, updates it as the
// exchange progresses, and passes it to timeout policies and event
// handlers. Handlers should treat exported fields as read-only, with
// the exception of reasonable changes to the spec header before it is
// sent (for example to add a signature).
type Exchange struct {
	// Spec is the request spec being executed. It is never nil.
	Spec *Spec

	// Start is the time the exchange was handed to the transport.
	Start time.Time

	// End is the time the transport returned. It contains the zero
	// value until then.
	End time.Time

	// Result is the result reported by the transport. It is nil until
	// the transport returns, and stays nil if the transport failed.
	Result *Result

	// Header holds the response header parsed from Result.RawHeader.
	// It is nil until the response is parsed.
	Header http.Header

	// Err is the error reported by the transport, if any. Whenever Err
	// is non-nil, Result is nil.
	Err error

	data context.Context
}

// StatusCode returns the status code of the result, or 0 if there is
// no result.
func (x *Exchange) StatusCode() int {
	if x.Result == nil {
		return 0
	}

	return x.Result.StatusCode
}

// Duration returns the duration of the exchange.
//
// If the exchange has not yet started, the duration is zero. If it has
// ended, the duration is End minus Start. Otherwise it is the current
// time minus Start.
func (x *Exchange) Duration() time.Duration {
	if !x.Started() {
		return time.Duration(0)
	} else if !x.Ended() {
		return time.Since(x.Start)
	}

	return x.End.Sub(x.Start)
}

// Started indicates whether the exchange has started.
func (x *Exchange) Started() bool {
	return x.Start != (time.Time{})
}

// Ended indicates whether the exchange has ended.
func (x *Exchange) Ended() bool {
	return x.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout, either because the error or one of its
// wrapped causes reports Timeout() true, or because the spec context
// deadline was exceeded.
func (x *Exchange) Timeout() bool {
	if x.Err == nil {
		return false
	}

	var t hasTimeout
	if errors.As(x.Err, &t) && t.Timeout() {
		return true
	}

	return errors.Is(x.Err, context.DeadlineExceeded)
}

// SetValue allows event handlers to store arbitrary data in the
// exchange. The key must follow the same rules as the key parameter in
// context.WithValue.
func (x *Exchange) SetValue(key, value interface{}) {
	ctx := x.data
	if ctx == nil {
		ctx = context.Background()
	}

	x.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this exchange for key,
// or nil if there is no value associated with key.
func (x *Exchange) Value(key interface{}) interface{} {
	ctx := x.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}

type hasTimeout interface {
	Timeout() bool
}
