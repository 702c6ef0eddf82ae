// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"github.com/gogama/requests/request"
	"github.com/sirupsen/logrus"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in an Adapter.
//
// Build the group before installing it. Running the chains is safe for
// concurrent use, but PushBack is not.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("requests: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, x *request.Exchange) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, x)
		}
	}
}

// A Handler handles the occurrence of an event during an exchange.
type Handler interface {
	Handle(Event, *request.Exchange)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Exchange)

// Handle calls f(evt, x).
func (f HandlerFunc) Handle(evt Event, x *request.Exchange) {
	f(evt, x)
}

// A LogHandler logs exchanges through a logrus logger: the outgoing
// request at debug level, timeouts at warn level, and the outcome of
// every exchange at debug level (or info level for transport failures).
type LogHandler struct {
	// Logger receives the log entries. If nil, logrus.StandardLogger()
	// is used.
	Logger logrus.FieldLogger
}

// Install pushes h onto the back of every event chain in g.
func (h *LogHandler) Install(g *HandlerGroup) {
	for _, evt := range Events() {
		g.PushBack(evt, h)
	}
}

// Handle logs evt for x.
func (h *LogHandler) Handle(evt Event, x *request.Exchange) {
	logger := h.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	var entry *logrus.Entry
	if x.Spec != nil && x.Spec.URL != nil {
		entry = logger.WithFields(logrus.Fields{
			"method": x.Spec.Method,
			"url":    x.Spec.URL.String(),
		})
	} else {
		entry = logger.WithFields(logrus.Fields{})
	}
	switch evt {
	case BeforeExchange:
		entry.Debug("requests: sending")
	case AfterTimeout:
		entry.WithField("duration", x.Duration()).Warn("requests: exchange timed out")
	case AfterExchange:
		entry = entry.WithField("duration", x.Duration())
		if x.Err != nil {
			entry.WithError(x.Err).Info("requests: exchange failed")
		} else {
			entry.WithField("status", x.StatusCode()).Debug("requests: exchange complete")
		}
	}
}
