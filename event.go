// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in an Adapter to hook into every
// exchange it performs.
type Event int

const (
	// BeforeExchange identifies the event that occurs after the request
	// spec is fully built and validated, immediately before it is handed
	// to the transport.
	//
	// BeforeExchange handlers may change the spec header, thus changing
	// the request that will be sent, but should leave the other spec
	// fields alone. The exchange start time is not yet set.
	BeforeExchange Event = iota
	// AfterTimeout identifies the event that occurs after an exchange
	// failed because it timed out, either on the adapter's timeout or on
	// the caller's context deadline.
	//
	// When the adapter fires AfterTimeout, the exchange's error field is
	// set to the Timeout error and its result field is nil.
	AfterTimeout
	// AfterExchange identifies the event that occurs after the
	// transport returns, regardless of whether the exchange succeeded.
	//
	// When the adapter fires AfterExchange, exactly one of the
	// exchange's result and error fields is non-nil. If the result is
	// set, the exchange header holds the parsed response header (empty
	// if the host's header block could not be parsed).
	AfterExchange
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExchange",
	"AfterTimeout",
	"AfterExchange",
}

// Events returns a slice containing all events which can occur during
// an exchange, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExchange,
		AfterTimeout,
		AfterExchange,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
