// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"strings"
	"time"

	"github.com/gogama/requests/request"
)

// A Policy defines a timeout policy which may be plugged into the
// adapter (requests.Adapter) to direct how long each exchange may take.
//
// A zero or negative duration means the exchange is not bounded and
// runs until the host reports a result or a transport failure.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the exchange about to be
	// handed to the transport.
	//
	// Parameter x contains the exchange, whose Spec is fully built but
	// which has not started yet.
	Timeout(x *request.Exchange) time.Duration
}

// DefaultPolicy is the default timeout policy. Like the client library
// the adapter emulates, it never times out.
var DefaultPolicy Policy = Infinite

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(0)

// Fixed constructs a timeout policy that uses the same value for every
// exchange.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

type fixed time.Duration

func (f fixed) Timeout(_ *request.Exchange) time.Duration {
	return time.Duration(f)
}

// The PolicyFunc type is an adapter to allow the use of ordinary
// functions as timeout policies.
type PolicyFunc func(x *request.Exchange) time.Duration

// Timeout calls f(x).
func (f PolicyFunc) Timeout(x *request.Exchange) time.Duration {
	return f(x)
}

// ByMethod constructs a timeout policy that looks up the timeout by
// the exchange's HTTP method, using def for methods not in m. Keys of m
// are case-insensitive.
//
// Use ByMethod when, for example, idempotent reads should fail fast
// while uploads are given more time.
func ByMethod(m map[string]time.Duration, def time.Duration) Policy {
	m2 := make(map[string]time.Duration, len(m))
	for k, v := range m {
		m2[strings.ToUpper(k)] = v
	}
	return PolicyFunc(func(x *request.Exchange) time.Duration {
		if x.Spec != nil {
			if d, ok := m2[x.Spec.Method]; ok {
				return d
			}
		}
		return def
	})
}
