// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"testing"

	"github.com/gogama/requests/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Adapter)
	assert.NotNil(t, s.Headers)
	assert.NotNil(t, s.Cookies)
	assert.True(t, s.Verify)
	assert.True(t, s.TrustEnv)
	assert.Equal(t, DefaultRedirectLimit, s.MaxRedirects)
	assert.Same(t, DefaultAdapter, s.adapter())
	assert.NoError(t, s.Close())
}

func TestSession_Forwarding(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		action func(s *Session) (*Response, error)
	}{
		{"Request", "PUT", func(s *Session) (*Response, error) { return s.Request("put", "test", nil) }},
		{"Get", "GET", func(s *Session) (*Response, error) { return s.Get("test", nil) }},
		{"Options", "OPTIONS", func(s *Session) (*Response, error) { return s.Options("test", nil) }},
		{"Head", "HEAD", func(s *Session) (*Response, error) { return s.Head("test", nil) }},
		{"Post", "POST", func(s *Session) (*Response, error) { return s.Post("test", nil) }},
		{"Put", "PUT", func(s *Session) (*Response, error) { return s.Put("test", nil) }},
		{"Patch", "PATCH", func(s *Session) (*Response, error) { return s.Patch("test", nil) }},
		{"Delete", "DELETE", func(s *Session) (*Response, error) { return s.Delete("test", nil) }},
		{"PostJSON", "POST", func(s *Session) (*Response, error) { return s.PostJSON("test", struct{}{}) }},
		{"Do", "PATCH", func(s *Session) (*Response, error) {
			spec, err := request.NewSpec("PATCH", "test")
			if err != nil {
				return nil, err
			}
			return s.Do(spec)
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mockTransport := newMockTransport(t)
			mockTransport.On("Execute", mock.MatchedBy(func(s *request.Spec) bool {
				return s.Method == testCase.method
			})).Return(&request.Result{StatusCode: 200}, nil).Once()
			s := NewSession()
			s.Adapter = &Adapter{Transport: mockTransport}
			s.Headers.Set("X-Session", "not merged")
			s.Params = Params{{"not", "merged"}}
			defer func() {
				assert.NoError(t, s.Close())
			}()

			resp, err := testCase.action(s)

			mockTransport.AssertExpectations(t)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Empty(t, resp.Request.Header.Get("X-Session"))
			assert.Empty(t, resp.Request.URL.RawQuery)
		})
	}
}
