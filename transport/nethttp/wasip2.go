// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build wasip2

package nethttp

import (
	_ "github.com/ydnar/wasi-http-go/wasihttp" // route http.DefaultTransport through wasi:http
)
