// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for bounding how long a single HTTP
// exchange may take. The adapter turns the duration a policy returns
// into a deadline on the exchange context, which transports map onto
// the host's native abort facility.
package timeout
