// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	template, _ = http.NewRequest("GET", "", nil)
)

const (
	nilCtxMsg      = "requests/request: nil context"
	emptyURLMsg    = "requests/request: empty URL"
	emptyMethodMsg = "requests/request: empty method"
)

// supportedMethods is the set of verbs a Spec may carry.
var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// A Spec describes one HTTP exchange for execution by a transport.
//
// A Spec is the configuration of a single native request handle in the
// host environment: the transport consumes it once, performs exactly
// one exchange, and the Spec has no life beyond that call. Its field
// structure is a stripped-down http.Request with the body replaced by
// a pre-buffered []byte.
type Spec struct {
	// Method is the upper-case HTTP method. It is always one of GET,
	// POST, PUT, PATCH, DELETE, HEAD, or OPTIONS.
	Method string

	// URL specifies the URL to access, including any query string
	// built from request parameters.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body
	// means no body is sent.
	Body []byte

	// Binary asks the transport to deliver the response body as a
	// raw byte buffer instead of decoded text. Either way the
	// transport must deliver the complete body before returning.
	Binary bool

	// AllowRedirects records the caller's redirect preference. Redirects
	// are handled entirely by the host, so transports are free to ignore
	// it.
	AllowRedirects bool

	ctx context.Context
}

// NewSpec wraps NewSpecWithContext using the background context.
func NewSpec(method, url string) (*Spec, error) {
	return NewSpecWithContext(context.Background(), method, url)
}

// NewSpecWithContext returns a new Spec given a method and URL.
//
// The method is case-insensitive and is normalized to upper case. It
// must be one of the supported verbs. The URL may be absolute or
// relative but may not be empty.
func NewSpecWithContext(ctx context.Context, method, url string) (*Spec, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if url == "" {
		return nil, errors.New(emptyURLMsg)
	}
	m, err := NormalizeMethod(method)
	if err != nil {
		return nil, err
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Spec{
		ctx:            ctx,
		Method:         m,
		URL:            u,
		Header:         make(http.Header),
		AllowRedirects: true,
	}, nil
}

// NormalizeMethod upper-cases method and checks it is a valid HTTP
// token naming one of the supported verbs. An empty method is an error.
func NormalizeMethod(method string) (string, error) {
	if method == "" {
		return "", errors.New(emptyMethodMsg)
	}
	if strings.IndexFunc(method, isNotToken) != -1 {
		return "", fmt.Errorf("requests/request: invalid method %q", method)
	}
	m := strings.ToUpper(method)
	if !supportedMethods[m] {
		return "", fmt.Errorf("requests/request: unsupported method %q", method)
	}
	return m, nil
}

// Context returns the spec's context. The returned context is always
// non-nil; it defaults to the background context.
func (s *Spec) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of s with its context changed to
// ctx, which must be non-nil.
func (s *Spec) WithContext(ctx context.Context) *Spec {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	s2 := new(Spec)
	*s2 = *s
	s2.ctx = ctx
	return s2
}

// AddQuery appends an already-encoded query string to the spec URL,
// joining it to any existing query with "&".
func (s *Spec) AddQuery(encoded string) {
	if encoded == "" {
		return
	}
	if s.URL.RawQuery == "" {
		s.URL.RawQuery = encoded
	} else {
		s.URL.RawQuery += "&" + encoded
	}
}

// SetHeader validates name and value and sets the header, replacing
// any existing values.
func (s *Spec) SetHeader(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("requests/request: invalid header name %q", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("requests/request: invalid value for header %q", name)
	}
	s.Header.Set(name, value)
	return nil
}

// AddCookie adds a cookie to the request. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field. That
// means all cookies, if any, are written into the same line,
// separated by semicolons.
func (s *Spec) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	v := c2.String()
	if h := s.Header.Get("Cookie"); h != "" {
		s.Header.Set("Cookie", h+"; "+v)
	} else {
		s.Header.Set("Cookie", v)
	}
}

// SetBasicAuth sets the Authorization header to use HTTP Basic
// Authentication with the provided username and password.
func (s *Spec) SetBasicAuth(username, password string) {
	s.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// ToRequest creates a net/http request corresponding to the spec. The
// context of the new request is the spec's context.
func (s *Spec) ToRequest() *http.Request {
	r := template.WithContext(s.Context())
	r.Method = s.Method
	r.URL = s.URL
	r.Header = s.Header
	if len(s.Body) > 0 {
		r.Body, r.GetBody = bodyFuncs(s.Body)
		r.ContentLength = int64(len(s.Body))
	}
	r.Host = s.URL.Host
	return r
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
