// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package nethttp

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"syscall"
	"testing"

	"github.com/gogama/requests/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransport_Execute(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		m := newMockHTTPDoer(t)
		tr := &Transport{HTTPDoer: m}
		s, err := request.NewSpec("POST", "http://foo.com/bar")
		require.NoError(t, err)
		s.Body = []byte("ham")
		body := &trackingBody{r: strings.NewReader("eggs")}
		resp := &http.Response{
			StatusCode: 201,
			Status:     "201 Created",
			Header:     http.Header{"X-Spam": {"1"}},
			Body:       body,
			Request:    &http.Request{URL: &url.URL{Scheme: "http", Host: "foo.com", Path: "/baz"}},
		}
		m.On("Do", mock.MatchedBy(func(r *http.Request) bool {
			b, _ := ioutil.ReadAll(r.Body)
			return r.Method == "POST" && r.URL == s.URL && string(b) == "ham"
		})).Return(resp, nil).Once()

		res, err := tr.Execute(s)

		m.AssertExpectations(t)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 201, res.StatusCode)
		assert.Equal(t, "201 Created", res.Status)
		assert.Equal(t, "http://foo.com/baz", res.URL)
		assert.Equal(t, "X-Spam: 1\r\n", res.RawHeader)
		assert.Equal(t, []byte("eggs"), res.Body)
		assert.True(t, body.closed)
	})
	t.Run("Do error", func(t *testing.T) {
		m := newMockHTTPDoer(t)
		tr := &Transport{HTTPDoer: m}
		s, err := request.NewSpec("GET", "http://foo.com")
		require.NoError(t, err)
		m.On("Do", mock.Anything).Return(nil, syscall.ECONNREFUSED).Once()

		res, err := tr.Execute(s)

		m.AssertExpectations(t)
		assert.Nil(t, res)
		assert.Equal(t, syscall.ECONNREFUSED, err)
	})
	t.Run("body read error", func(t *testing.T) {
		m := newMockHTTPDoer(t)
		tr := &Transport{HTTPDoer: m}
		s, err := request.NewSpec("GET", "http://foo.com")
		require.NoError(t, err)
		readErr := errors.New("connection reset mid-body")
		body := &trackingBody{err: readErr}
		m.On("Do", mock.Anything).Return(&http.Response{StatusCode: 200, Header: http.Header{}, Body: body}, nil).Once()

		res, err := tr.Execute(s)

		assert.Nil(t, res)
		assert.Same(t, readErr, err)
		assert.True(t, body.closed)
	})
}

func TestTransport_ExecuteServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Query", r.URL.RawQuery)
		w.WriteHeader(404)
		_, _ = w.Write([]byte("not here"))
	}))
	defer server.Close()

	tr := &Transport{HTTPDoer: server.Client()}
	s, err := request.NewSpec("get", server.URL+"/x?a=1")
	require.NoError(t, err)

	res, err := tr.Execute(s)

	require.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
	assert.Equal(t, []byte("not here"), res.Body)
	assert.Contains(t, res.RawHeader, "X-Method: GET\r\n")
	assert.Contains(t, res.RawHeader, "X-Query: a=1\r\n")
	assert.Equal(t, server.URL+"/x?a=1", res.URL)
}

func TestTransport_CloseIdleConnections(t *testing.T) {
	t.Run("no CloseIdleConnections", func(t *testing.T) {
		m := newMockHTTPDoer(t)
		tr := &Transport{HTTPDoer: m}
		tr.CloseIdleConnections()
		m.AssertExpectations(t)
	})
	t.Run("with CloseIdleConnections", func(t *testing.T) {
		m := &mockHTTPDoerWithCloseIdleConnections{}
		m.Test(t)
		m.On("CloseIdleConnections").Once()
		tr := &Transport{HTTPDoer: m}
		tr.CloseIdleConnections()
		m.AssertExpectations(t)
	})
}

func TestTransport_ZeroValue(t *testing.T) {
	assert.Same(t, http.DefaultClient, (&Transport{}).doer())
	assert.Same(t, http.DefaultClient, Default.doer())
}

type mockHTTPDoer struct {
	mock.Mock
}

func newMockHTTPDoer(t *testing.T) *mockHTTPDoer {
	m := &mockHTTPDoer{}
	m.Test(t)
	return m
}

func (m *mockHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	args := m.Called(r)
	err := args.Error(1)
	if resp, ok := args.Get(0).(*http.Response); ok {
		return resp, err
	}
	return nil, err
}

type mockHTTPDoerWithCloseIdleConnections struct {
	mockHTTPDoer
}

func (m *mockHTTPDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}

type trackingBody struct {
	r      *strings.Reader
	err    error
	closed bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	return b.r.Read(p)
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}
