// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"net/http"

	"github.com/gogama/requests/request"
)

// DefaultRedirectLimit is the MaxRedirects value of a new Session.
const DefaultRedirectLimit = 30

// A Session forwards every call to an Adapter unchanged.
//
// Session exists so that code written against sessions keeps working.
// It holds no connection state: the host owns connections, cookies and
// redirects. The configuration fields below are kept for compatibility
// only and are NOT merged into the calls made through the session.
type Session struct {
	// Adapter receives the calls. If nil, DefaultAdapter is used.
	Adapter *Adapter

	Headers      http.Header
	Cookies      map[string]string
	Params       Params
	Auth         *BasicAuth
	Stream       bool
	Verify       bool
	MaxRedirects int
	TrustEnv     bool
}

// NewSession returns a session with the customary defaults.
func NewSession() *Session {
	return &Session{
		Headers:      http.Header{},
		Cookies:      map[string]string{},
		Verify:       true,
		MaxRedirects: DefaultRedirectLimit,
		TrustEnv:     true,
	}
}

// Close does nothing and returns nil.
func (s *Session) Close() error {
	return nil
}

// Request forwards to the session's adapter.
func (s *Session) Request(method, url string, args *Args) (*Response, error) {
	return s.adapter().Request(method, url, args)
}

// Get forwards to the session's adapter.
func (s *Session) Get(url string, args *Args) (*Response, error) {
	return s.adapter().Get(url, args)
}

// Options forwards to the session's adapter.
func (s *Session) Options(url string, args *Args) (*Response, error) {
	return s.adapter().Options(url, args)
}

// Head forwards to the session's adapter.
func (s *Session) Head(url string, args *Args) (*Response, error) {
	return s.adapter().Head(url, args)
}

// Post forwards to the session's adapter.
func (s *Session) Post(url string, args *Args) (*Response, error) {
	return s.adapter().Post(url, args)
}

// Put forwards to the session's adapter.
func (s *Session) Put(url string, args *Args) (*Response, error) {
	return s.adapter().Put(url, args)
}

// Patch forwards to the session's adapter.
func (s *Session) Patch(url string, args *Args) (*Response, error) {
	return s.adapter().Patch(url, args)
}

// Delete forwards to the session's adapter.
func (s *Session) Delete(url string, args *Args) (*Response, error) {
	return s.adapter().Delete(url, args)
}

// PostJSON forwards to the session's adapter.
func (s *Session) PostJSON(url string, v interface{}) (*Response, error) {
	return s.adapter().PostJSON(url, v)
}

// Do forwards to the session's adapter.
func (s *Session) Do(spec *request.Spec) (*Response, error) {
	return s.adapter().Do(spec)
}

func (s *Session) adapter() *Adapter {
	if s.Adapter == nil {
		return DefaultAdapter
	}

	return s.Adapter
}
