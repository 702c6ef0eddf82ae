// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Spec (describes one HTTP
exchange), Result (what a transport reports back) and Exchange (the
state of one Spec execution).

A Spec is the configuration of a single native request handle in the
host environment. For those familiar with net/http, a Spec looks like a
stripped-down http.Request with the server-side fields removed and the
body replaced by a pre-buffered []byte. Transports consume a Spec once
and discard it.

	s, err := request.NewSpec("get", "https://example.com")
	...
	res, err := transport.Execute(s)
	...

A Spec may carry a context, whose deadline and cancellation the
transport must honor by aborting the host exchange:

	s, err := request.NewSpecWithContext(ctx, "POST", "https://example.com/upload")

Exchange is the type handed to timeout policies and event handlers
while the adapter in package requests runs a Spec. You will typically
not allocate Exchange values yourself.
*/
package request
