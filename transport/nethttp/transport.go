// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp

import (
	"bytes"
	"io/ioutil"
	"net/http"

	"github.com/gogama/requests/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// Default is the transport used by an adapter with no transport set.
// It sends requests with http.DefaultClient.
var Default = &Transport{}

// A Transport executes request specs with an HTTPDoer. Its zero value
// is a valid configuration that uses http.DefaultClient.
//
// Transport reads and buffers the entire response body before
// returning, and reports the response header as a raw header block in
// wire format. Transport is safe for concurrent use by multiple
// goroutines if its HTTPDoer is.
type Transport struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. Redirects, cookie jars and connection reuse
	// are all its business.
	//
	// If HTTPDoer is nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
}

// Execute performs the exchange described by s and blocks until the
// whole response body has been read or the exchange fails.
//
// The spec's Binary flag makes no difference to this transport, which
// always delivers the body as raw bytes. Errors returned are those of
// the HTTPDoer or of reading the body, unwrapped.
func (t *Transport) Execute(s *request.Spec) (*request.Result, error) {
	resp, err := t.doer().Do(s.ToRequest())
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw bytes.Buffer
	if err = resp.Header.Write(&raw); err != nil {
		return nil, err
	}

	res := &request.Result{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		RawHeader:  raw.String(),
		Body:       body,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		res.URL = resp.Request.URL.String()
	}
	return res, nil
}

// CloseIdleConnections invokes the same method on the transport's
// underlying HTTPDoer. If the HTTPDoer has no CloseIdleConnections
// method, this method does nothing.
func (t *Transport) CloseIdleConnections() {
	type idleCloser interface {
		CloseIdleConnections()
	}
	if ic, ok := t.doer().(idleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *Transport) doer() HTTPDoer {
	if t.HTTPDoer == nil {
		return http.DefaultClient
	}

	return t.HTTPDoer
}
