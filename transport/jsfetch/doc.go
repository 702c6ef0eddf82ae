// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package jsfetch provides a transport that performs exchanges through the
browser's fetch API when the program is compiled with GOOS=js
GOARCH=wasm.

fetch is promise based. Execute parks the calling goroutine on a channel
until the promise settles, so the caller sees a blocking call while the
browser's event loop stays free to run other work. For the same reason
Execute must be called from a goroutine and never directly from inside
a js.Func callback, which would deadlock the event loop.

	a := &requests.Adapter{Transport: jsfetch.Default}
	resp, err := a.Get("/api/items", nil)

A deadline or cancellation on the spec context aborts the fetch through
an AbortController.

Browsers refuse to let scripts set some request headers, Cookie among
them. Execute drops those headers and logs a warning rather than
letting the browser fail the whole request.
*/
package jsfetch
