// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package requests provides a synchronous, keyword-argument style HTTP
client API on top of whatever HTTP primitive the host environment
offers: plain net/http, a WASI host's outgoing handler, or a browser's
fetch.

Use the package-level verb functions for one-off calls.

	resp, err := requests.Get("https://www.example.com/items", &requests.Args{
		Params:  requests.Params{{"page", "2"}},
		Headers: map[string]string{"Accept": "application/json"},
	})
	...
	var items []Item
	err = resp.JSON(&items)
	...
	resp, err := requests.Post("https://www.example.com/items", &requests.Args{
		JSON: map[string]interface{}{"name": "widget"},
	})

Every call performs exactly one exchange and blocks until the complete
response is available. A 4XX or 5XX status is a normal response; call
RaiseForStatus to treat it as an error. Errors are of type *Error and
are classified by Kind:

	if requests.KindOf(err) == requests.Timeout {
		...
	}

For control over where exchanges go, create an Adapter with a custom
transport. For example, call the browser's fetch API directly from a
js/wasm program:

	adapter := &requests.Adapter{
		Transport: &jsfetch.Transport{Credentials: "include"},
	}

To bound every exchange, set a timeout policy using package timeout.
A positive Args.Timeout overrides it for a single call.

	adapter := &requests.Adapter{
		TimeoutPolicy: timeout.Fixed(10*time.Second),
	}

To hook into each exchange, install handlers:

	handlers := &requests.HandlerGroup{}
	(&requests.LogHandler{Logger: logrus.StandardLogger()}).Install(handlers)
	adapter := &requests.Adapter{
		Handlers: handlers,
	}

Session wraps an Adapter for code written against sessions; it forwards
every call unchanged.
*/
package requests
