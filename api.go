// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import "github.com/gogama/requests/request"

// Requester is the requests-style call surface shared by Adapter and
// Session.
type Requester interface {
	Request(method, url string, args *Args) (*Response, error)
	Get(url string, args *Args) (*Response, error)
	Options(url string, args *Args) (*Response, error)
	Head(url string, args *Args) (*Response, error)
	Post(url string, args *Args) (*Response, error)
	Put(url string, args *Args) (*Response, error)
	Patch(url string, args *Args) (*Response, error)
	Delete(url string, args *Args) (*Response, error)
	PostJSON(url string, v interface{}) (*Response, error)
	Do(s *request.Spec) (*Response, error)
}

var (
	_ Requester = (*Adapter)(nil)
	_ Requester = (*Session)(nil)
)

// Request sends a request with DefaultAdapter.
func Request(method, url string, args *Args) (*Response, error) {
	return DefaultAdapter.Request(method, url, args)
}

// Get issues a GET with DefaultAdapter.
func Get(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Get(url, args)
}

// Options issues an OPTIONS with DefaultAdapter.
func Options(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Options(url, args)
}

// Head issues a HEAD with DefaultAdapter.
func Head(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Head(url, args)
}

// Post issues a POST with DefaultAdapter.
func Post(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Post(url, args)
}

// Put issues a PUT with DefaultAdapter.
func Put(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Put(url, args)
}

// Patch issues a PATCH with DefaultAdapter.
func Patch(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Patch(url, args)
}

// Delete issues a DELETE with DefaultAdapter.
func Delete(url string, args *Args) (*Response, error) {
	return DefaultAdapter.Delete(url, args)
}

// PostJSON issues a POST of v as JSON with DefaultAdapter.
func PostJSON(url string, v interface{}) (*Response, error) {
	return DefaultAdapter.PostJSON(url, v)
}
