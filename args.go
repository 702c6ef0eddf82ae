// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gogama/requests/request"
)

// DefaultUserAgent is the User-Agent header sent when the caller does
// not set one.
const DefaultUserAgent = "go-requests/1.0"

// A Param is one query string parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query string parameters. Unlike
// url.Values, Params keeps the order in which parameters were given.
type Params []Param

// ParamsFromValues converts v into Params, sorted by key. Multiple
// values for one key keep their relative order.
func ParamsFromValues(v url.Values) Params {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var p Params
	for _, k := range keys {
		for _, x := range v[k] {
			p = append(p, Param{Key: k, Value: x})
		}
	}
	return p
}

// Add appends a parameter and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode encodes the parameters in "URL encoded" form, in order, for
// example "a=1&b=x+y".
func (p Params) Encode() string {
	var b strings.Builder
	for i, x := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(x.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(x.Value))
	}
	return b.String()
}

// BasicAuth holds credentials for HTTP Basic Authentication.
type BasicAuth struct {
	Username string
	Password string
}

// Args holds the optional arguments of a request. A nil *Args is
// equivalent to the zero value, which sends a bare request.
//
// Args is only read by the adapter; the same Args may be reused across
// calls and goroutines.
type Args struct {
	// Context controls cancellation of the call. If nil, the
	// background context is used.
	Context context.Context

	// Params are encoded and appended to the URL query string, after
	// any query the URL already has.
	Params Params

	// Headers are set on the outgoing request. Unless Headers names a
	// User-Agent, DefaultUserAgent is sent. Header names are
	// case-insensitive. An invalid header name or value fails the call
	// with InvalidArgument.
	Headers map[string]string

	// Cookies are sent in a single Cookie header. Hosts that forbid
	// scripts from setting Cookie, such as browsers, send their own
	// ambient cookies instead.
	Cookies map[string]string

	// Auth, if not nil, sets HTTP Basic Authentication.
	Auth *BasicAuth

	// Data is the request body. A map with string keys or a struct (or
	// pointer to one) is sent as JSON with Content-Type
	// application/json. A string, []byte or io.Reader is sent as is.
	// Any other type fails the call with InvalidArgument.
	Data interface{}

	// JSON is a map with string keys or a struct (or pointer to one),
	// sent as JSON with Content-Type application/json. When both JSON
	// and Data are set, JSON wins and Data is ignored. Any other type
	// fails the call with InvalidArgument.
	JSON interface{}

	// Stream asks the host for a binary body instead of decoded text.
	// The body is still read completely before the call returns.
	Stream bool

	// Timeout, if positive, bounds the exchange and overrides the
	// adapter's timeout policy.
	Timeout time.Duration

	// AllowRedirects is accepted for compatibility and recorded on the
	// request spec. Redirects are handled entirely by the host. If nil,
	// the verb default applies: true except for HEAD.
	AllowRedirects *bool
}

func (a *Args) withRedirectDefault(allow bool) *Args {
	if a == nil {
		return &Args{AllowRedirects: &allow}
	}
	if a.AllowRedirects != nil {
		return a
	}
	a2 := *a
	a2.AllowRedirects = &allow
	return &a2
}

func (a *Args) context() context.Context {
	if a.Context == nil {
		return context.Background()
	}
	return a.Context
}

// spec validates the arguments and builds the request spec for one
// exchange. Every error it returns is of kind InvalidArgument.
func (a *Args) spec(method, rawURL string) (*request.Spec, error) {
	s, err := request.NewSpecWithContext(a.context(), method, rawURL)
	if err != nil {
		return nil, invalidArg(err)
	}
	if a.AllowRedirects != nil {
		s.AllowRedirects = *a.AllowRedirects
	}
	s.Binary = a.Stream
	s.AddQuery(a.Params.Encode())
	for _, name := range sortedKeys(a.Headers) {
		if err = s.SetHeader(name, a.Headers[name]); err != nil {
			return nil, invalidArg(err)
		}
	}
	if s.Header.Get("User-Agent") == "" {
		s.Header.Set("User-Agent", DefaultUserAgent)
	}
	for _, name := range sortedKeys(a.Cookies) {
		c := &http.Cookie{Name: name, Value: a.Cookies[name]}
		if c.String() == "" {
			return nil, invalidArg(fmt.Errorf("requests: invalid cookie %q", name))
		}
		s.AddCookie(c)
	}
	if a.Auth != nil {
		s.SetBasicAuth(a.Auth.Username, a.Auth.Password)
	}
	if err = a.body(s); err != nil {
		return nil, invalidArg(err)
	}
	return s, nil
}

func (a *Args) body(s *request.Spec) error {
	payload, isJSON := a.JSON, true
	if isAbsent(payload) {
		payload, isJSON = a.Data, false
	}
	if isAbsent(payload) {
		return nil
	}

	if !isJSON && isRawBody(payload) {
		b, err := request.BodyBytes(payload)
		if err != nil {
			return err
		}
		s.Body = b
		return nil
	}

	if isJSONObject(payload) {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		s.Body = b
		s.Header.Set("Content-Type", "application/json")
		return nil
	}

	if isJSON {
		return fmt.Errorf("requests: unsupported payload type %T for JSON (use a map with string keys or a struct)", payload)
	}
	return fmt.Errorf("requests: unsupported payload type %T: %w", payload, request.ErrUnsupportedBody)
}

func isRawBody(v interface{}) bool {
	switch v.(type) {
	case string, []byte, io.Reader:
		return true
	}
	return false
}

func isAbsent(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isJSONObject(v interface{}) bool {
	if _, ok := v.(io.Reader); ok {
		return false
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
