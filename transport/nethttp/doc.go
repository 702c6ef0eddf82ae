// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package nethttp provides the default transport, which performs each
exchange through an HTTPDoer such as the standard http.Client.

The standard library picks the host networking primitive: on GOOS=js
http.DefaultTransport is implemented over the browser fetch API, and
when building for wasip2 this package blank-imports
github.com/ydnar/wasi-http-go/wasihttp so that http.DefaultTransport
uses the WASI host's outgoing handler. Everywhere else it is a plain
TCP client.

	a := &requests.Adapter{
		Transport: &nethttp.Transport{HTTPDoer: &http.Client{Timeout: time.Minute}},
	}
*/
package nethttp
