// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gogama/requests/request"
)

// A Response is a read-only snapshot of a completed exchange.
//
// A Response only exists once the host has reported an HTTP response,
// whatever its status code. It is fully buffered: reading it never
// touches the network.
type Response struct {
	// StatusCode is the HTTP status code, e.g. 200.
	StatusCode int

	// Status is the status text, e.g. "200 OK". It may be empty if the
	// host does not expose it.
	Status string

	// URL is the final URL of the exchange as reported by the host, or
	// the request URL if the host did not report one.
	URL string

	// Header is the response header. Lookups with Get are
	// case-insensitive. If the host's header block could not be parsed,
	// Header is empty.
	Header http.Header

	// RawBody is the body exactly as delivered by the host.
	RawBody []byte

	// Text is the body as a string.
	Text string

	// Elapsed is the time between handing the request to the host and
	// the complete response becoming available.
	Elapsed time.Duration

	// Request is the spec that produced this response.
	Request *request.Spec
}

func newResponse(x *request.Exchange) *Response {
	r := &Response{
		StatusCode: x.Result.StatusCode,
		Status:     x.Result.Status,
		URL:        x.Result.URL,
		Header:     x.Header,
		RawBody:    x.Result.Body,
		Text:       string(x.Result.Body),
		Elapsed:    x.Duration(),
		Request:    x.Spec,
	}
	if r.URL == "" {
		r.URL = x.Spec.URL.String()
	}
	if r.Header == nil {
		r.Header = http.Header{}
	}
	return r
}

// JSON parses the body as JSON and stores the result in the value
// pointed to by v. A body that is not valid JSON for v produces an
// error of kind JSONDecodeError; a v that cannot be decoded into (nil
// or not a pointer) produces InvalidArgument.
func (r *Response) JSON(v interface{}) error {
	err := json.Unmarshal(r.RawBody, v)
	if err == nil {
		return nil
	}
	var iue *json.InvalidUnmarshalError
	if errors.As(err, &iue) {
		return invalidArg(err)
	}
	return &Error{Kind: JSONDecodeError, Err: err}
}

// IterContent returns a sequence that yields the whole body, as one
// chunk, and then ends. The body is already materialized, so ranging
// over the sequence again yields the same chunk without another read.
func (r *Response) IterContent() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		yield(r.RawBody)
	}
}

// OK reports whether the status code is below 400.
func (r *Response) OK() bool {
	return r.StatusCode < 400
}

// RaiseForStatus returns an error of kind HTTPError if the status code
// is a 4XX client error or a 5XX server error, and nil otherwise.
//
// The adapter never treats a status code as a failure on its own; call
// RaiseForStatus to opt in.
func (r *Response) RaiseForStatus() error {
	var class string
	switch {
	case 400 <= r.StatusCode && r.StatusCode < 500:
		class = "Client Error"
	case 500 <= r.StatusCode && r.StatusCode < 600:
		class = "Server Error"
	default:
		return nil
	}
	reason := http.StatusText(r.StatusCode)
	if i := strings.IndexByte(r.Status, ' '); i >= 0 && i+1 < len(r.Status) {
		reason = r.Status[i+1:]
	}
	return &Error{
		Kind: HTTPError,
		Err:  fmt.Errorf("%d %s: %s for url: %s", r.StatusCode, class, reason, r.URL),
	}
}

// parseRawHeader parses a raw header block, "Name: value" fields
// separated by CRLF or LF, into an http.Header.
func parseRawHeader(raw string) (http.Header, error) {
	raw = strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(raw) == "" {
		return http.Header{}, nil
	}
	r := textproto.NewReader(bufio.NewReader(strings.NewReader(raw + "\r\n\r\n")))
	h, err := r.ReadMIMEHeader()
	if err != nil {
		return nil, err
	}
	return http.Header(h), nil
}
