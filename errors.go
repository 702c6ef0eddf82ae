// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// A Kind classifies the errors returned by this package.
type Kind int

const (
	// Other is the kind of any error not produced by this package.
	Other Kind = iota
	// InvalidArgument indicates malformed call arguments: an empty URL,
	// an unsupported method, an invalid header, or a payload type the
	// adapter cannot encode. It is always reported before any network
	// activity.
	InvalidArgument
	// ConnectionError indicates a transport-level failure before any
	// HTTP response was obtained, for example a DNS failure, a refused
	// connection or a CORS rejection.
	ConnectionError
	// Timeout indicates the exchange did not complete within its
	// timeout, or the caller's context deadline.
	Timeout
	// JSONDecodeError indicates Response.JSON was called on a body that
	// is not valid JSON for the target value.
	JSONDecodeError
	// HeaderParseError indicates the host's raw response header block
	// could not be parsed. It is never returned by the adapter, which
	// logs it and continues with an empty header.
	HeaderParseError
	// HTTPError is returned by Response.RaiseForStatus for 4XX and 5XX
	// status codes. The adapter itself never returns it.
	HTTPError
	kindSentinel
)

var kindNames = [...]string{
	"Other",
	"InvalidArgument",
	"ConnectionError",
	"Timeout",
	"JSONDecodeError",
	"HeaderParseError",
	"HTTPError",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindSentinel {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// An Error is an error of a known Kind. The underlying cause is kept in
// Err; for ConnectionError and Timeout it is always a *url.Error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the error is of kind Timeout.
func (e *Error) Timeout() bool {
	return e.Kind == Timeout
}

// KindOf returns the kind of err, looking through wrapped errors. It
// returns Other for nil and for errors not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

func invalidArg(err error) error {
	return &Error{Kind: InvalidArgument, Err: err}
}

func urlErrorWrap(method, u string, err error) *url.Error {
	if ue, ok := err.(*url.Error); ok {
		return ue
	}

	return &url.Error{
		Op:  urlErrorOp(method),
		URL: u,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
