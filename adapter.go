// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gogama/requests/request"
	"github.com/gogama/requests/timeout"
	"github.com/gogama/requests/transport/nethttp"
	"github.com/sirupsen/logrus"
)

// A Transport performs exactly one HTTP exchange in the host
// environment.
//
// Execute must block until the complete response, body included, is
// available, or until the exchange fails. It must honor the deadline
// and cancellation of the spec context. A transport returns a non-nil
// Result if and only if the host reported an HTTP response, whatever
// its status code.
type Transport interface {
	Execute(s *request.Spec) (*request.Result, error)
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as transports.
type TransportFunc func(*request.Spec) (*request.Result, error)

// Execute calls f(s).
func (f TransportFunc) Execute(s *request.Spec) (*request.Result, error) {
	return f(s)
}

// DefaultAdapter is the adapter used by the package-level verb
// functions Get, Post, and so on.
var DefaultAdapter = &Adapter{}

var emptyHandlers = HandlerGroup{}

// An Adapter maps requests-style calls onto a host transport and turns
// each into a single blocking exchange.
//
// The zero value is a valid configuration. An Adapter is safe for
// concurrent use by multiple goroutines as long as its fields are not
// changed while calls are in flight.
type Adapter struct {
	// Transport performs the exchanges. If nil, nethttp.Default is
	// used.
	Transport Transport

	// TimeoutPolicy decides the timeout of each exchange that does not
	// set its own. If nil, timeout.DefaultPolicy is used, which never
	// times out.
	TimeoutPolicy timeout.Policy

	// Handlers run on the events of every exchange. If nil, no handlers
	// run.
	Handlers *HandlerGroup

	// Logger receives degraded-mode warnings, such as an unparseable
	// response header. If nil, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger
}

// Request sends an HTTP request with the given method and returns the
// response.
//
// The method is case-insensitive and must be one of GET, POST, PUT,
// PATCH, DELETE, HEAD, or OPTIONS. Invalid arguments are reported as an
// error of kind InvalidArgument before anything is sent. Transport
// failures are reported as ConnectionError or Timeout, wrapping a
// *url.Error. A response with a 4XX or 5XX status code is not an error.
func (a *Adapter) Request(method, url string, args *Args) (*Response, error) {
	if args == nil {
		args = &Args{}
	}
	s, err := args.spec(method, url)
	if err != nil {
		return nil, err
	}
	return a.execute(s, args.Timeout)
}

// Get issues a GET. Redirects are allowed unless args says otherwise.
func (a *Adapter) Get(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodGet, url, args.withRedirectDefault(true))
}

// Options issues an OPTIONS. Redirects are allowed unless args says
// otherwise.
func (a *Adapter) Options(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodOptions, url, args.withRedirectDefault(true))
}

// Head issues a HEAD. Redirects are not allowed unless args says
// otherwise.
func (a *Adapter) Head(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodHead, url, args.withRedirectDefault(false))
}

// Post issues a POST.
func (a *Adapter) Post(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodPost, url, args)
}

// Put issues a PUT.
func (a *Adapter) Put(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodPut, url, args)
}

// Patch issues a PATCH.
func (a *Adapter) Patch(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodPatch, url, args)
}

// Delete issues a DELETE.
func (a *Adapter) Delete(url string, args *Args) (*Response, error) {
	return a.Request(http.MethodDelete, url, args)
}

// PostJSON issues a POST with v encoded as the JSON body.
func (a *Adapter) PostJSON(url string, v interface{}) (*Response, error) {
	return a.Post(url, &Args{JSON: v})
}

// Do executes a request spec built by the caller. The adapter's timeout
// policy and handlers apply as for any other call.
//
// Do validates s as Request validates its arguments: a nil spec, a
// missing URL or an unsupported method fails with InvalidArgument
// before anything is sent. Do upper-cases s.Method and allocates
// s.Header if it is nil.
func (a *Adapter) Do(s *request.Spec) (*Response, error) {
	if s == nil {
		return nil, invalidArg(errors.New("requests: nil spec"))
	}
	if s.URL == nil || s.URL.String() == "" {
		return nil, invalidArg(errors.New("requests: spec has no URL"))
	}
	m, err := request.NormalizeMethod(s.Method)
	if err != nil {
		return nil, invalidArg(err)
	}
	s.Method = m
	if s.Header == nil {
		s.Header = http.Header{}
	}
	return a.execute(s, 0)
}

func (a *Adapter) execute(s *request.Spec, override time.Duration) (*Response, error) {
	x := &request.Exchange{
		Spec: s,
	}

	handlers := a.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	d := override
	if d <= 0 {
		d = a.timeoutPolicy().Timeout(x)
	}
	if d > 0 {
		ctx, cancel := context.WithTimeout(s.Context(), d)
		defer cancel()
		x.Spec = s.WithContext(ctx)
	}

	handlers.run(BeforeExchange, x)
	x.Start = time.Now()
	res, err := a.transport().Execute(x.Spec)
	x.End = time.Now()
	if err == nil && res == nil {
		err = errors.New("requests: transport returned no result")
	}

	if err != nil {
		x.Err = urlErrorWrap(x.Spec.Method, x.Spec.URL.String(), err)
		kind := ConnectionError
		if x.Timeout() || x.Spec.Context().Err() == context.DeadlineExceeded {
			kind = Timeout
		}
		x.Err = &Error{Kind: kind, Err: x.Err}
		if kind == Timeout {
			handlers.run(AfterTimeout, x)
		}
		handlers.run(AfterExchange, x)
		return nil, x.Err
	}

	x.Result = res
	x.Header, err = parseRawHeader(res.RawHeader)
	if err != nil {
		a.logger().WithFields(logrus.Fields{
			"url":   x.Spec.URL.String(),
			"error": &Error{Kind: HeaderParseError, Err: err},
		}).Warn("requests: ignoring unparseable response header")
		x.Header = http.Header{}
	}
	handlers.run(AfterExchange, x)
	return newResponse(x), nil
}

func (a *Adapter) transport() Transport {
	if a.Transport == nil {
		return nethttp.Default
	}

	return a.Transport
}

func (a *Adapter) timeoutPolicy() timeout.Policy {
	if a.TimeoutPolicy == nil {
		return timeout.DefaultPolicy
	}

	return a.TimeoutPolicy
}

func (a *Adapter) logger() logrus.FieldLogger {
	if a.Logger == nil {
		return logrus.StandardLogger()
	}

	return a.Logger
}
