// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build js && wasm

package jsfetch

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/gogama/requests/request"
	"github.com/sirupsen/logrus"
)

// Default is a Transport with the zero value configuration.
var Default = &Transport{}

// forbiddenHeaders lists the request headers browsers do not allow
// scripts to set.
var forbiddenHeaders = map[string]bool{
	"Accept-Charset":    true,
	"Accept-Encoding":   true,
	"Connection":        true,
	"Content-Length":    true,
	"Cookie":            true,
	"Date":              true,
	"Expect":            true,
	"Host":              true,
	"Keep-Alive":        true,
	"Referer":           true,
	"Te":                true,
	"Trailer":           true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

// A Transport executes request specs with the browser fetch API. Its
// zero value is a valid configuration.
type Transport struct {
	// Credentials is the fetch credentials mode: "omit",
	// "same-origin" or "include". Empty means "same-origin", so that
	// the browser's ambient cookies for the page's own origin are
	// sent.
	Credentials string

	// Logger receives warnings about headers the browser will not
	// send. If nil, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger
}

type settled struct {
	value js.Value
	err   error
}

// Execute performs the exchange described by s and blocks the calling
// goroutine until the complete body is available, the fetch fails, or
// the spec context is done.
//
// When s.Binary is set the body is read with arrayBuffer(), otherwise
// with text().
func (t *Transport) Execute(s *request.Spec) (*request.Result, error) {
	ctx := s.Context()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opt := js.Global().Get("Object").New()
	opt.Set("method", s.Method)
	opt.Set("credentials", t.credentials())
	opt.Set("headers", t.headers(s))
	if len(s.Body) > 0 {
		buf := js.Global().Get("Uint8Array").New(len(s.Body))
		js.CopyBytesToJS(buf, s.Body)
		opt.Set("body", buf)
	}

	ac := js.Global().Get("AbortController")
	if !ac.IsUndefined() {
		ac = ac.New()
		opt.Set("signal", ac.Get("signal"))
	}

	resp, err := await(ctx, ac, js.Global().Call("fetch", s.URL.String(), opt))
	if err != nil {
		return nil, err
	}

	res := &request.Result{
		StatusCode: resp.Get("status").Int(),
		URL:        resp.Get("url").String(),
		RawHeader:  rawHeader(resp.Get("headers")),
	}
	res.Status = strconv.Itoa(res.StatusCode) + " " + resp.Get("statusText").String()

	if s.Binary {
		v, err := await(ctx, ac, resp.Call("arrayBuffer"))
		if err != nil {
			return nil, err
		}
		u8 := js.Global().Get("Uint8Array").New(v)
		res.Body = make([]byte, u8.Get("byteLength").Int())
		js.CopyBytesToGo(res.Body, u8)
	} else {
		v, err := await(ctx, ac, resp.Call("text"))
		if err != nil {
			return nil, err
		}
		res.Body = []byte(v.String())
	}

	return res, nil
}

func (t *Transport) headers(s *request.Spec) js.Value {
	h := js.Global().Get("Headers").New()
	for name, values := range s.Header {
		if forbiddenHeaders[http.CanonicalHeaderKey(name)] {
			t.logger().WithFields(logrus.Fields{
				"header": name,
				"url":    s.URL.String(),
			}).Warn("jsfetch: browser refuses to send header, dropping it")
			continue
		}
		for _, v := range values {
			h.Call("append", name, v)
		}
	}
	return h
}

func (t *Transport) credentials() string {
	if t.Credentials == "" {
		return "same-origin"
	}
	return t.Credentials
}

func (t *Transport) logger() logrus.FieldLogger {
	if t.Logger == nil {
		return logrus.StandardLogger()
	}
	return t.Logger
}

// await parks the calling goroutine until promise p settles or ctx is
// done. When ctx is done first the fetch is aborted, and the callbacks
// are kept alive until the rejection that follows the abort arrives.
func await(ctx context.Context, ac js.Value, p js.Value) (js.Value, error) {
	ch := make(chan settled, 1)
	onFulfilled := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- settled{value: args[0]}
		return nil
	})
	onRejected := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- settled{err: js.Error{Value: args[0]}}
		return nil
	})
	p.Call("then", onFulfilled, onRejected)

	select {
	case r := <-ch:
		onFulfilled.Release()
		onRejected.Release()
		return r.value, r.err
	case <-ctx.Done():
		if ac.IsUndefined() {
			// Nothing will settle the promise early; the callbacks
			// are leaked rather than released while still reachable.
			return js.Undefined(), ctx.Err()
		}
		ac.Call("abort")
		<-ch
		onFulfilled.Release()
		onRejected.Release()
		return js.Undefined(), ctx.Err()
	}
}

func rawHeader(h js.Value) string {
	var b strings.Builder
	it := h.Call("entries")
	for {
		n := it.Call("next")
		if n.Get("done").Bool() {
			break
		}
		pair := n.Get("value")
		b.WriteString(pair.Index(0).String())
		b.WriteString(": ")
		b.WriteString(pair.Index(1).String())
		b.WriteString("\r\n")
	}
	return b.String()
}
