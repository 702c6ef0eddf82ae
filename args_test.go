// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package requests

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		testCases := []struct {
			name     string
			params   Params
			expected string
		}{
			{"nil", nil, ""},
			{"one", Params{{"a", "1"}}, "a=1"},
			{"order kept", Params{{"b", "2"}, {"a", "1"}}, "b=2&a=1"},
			{"repeated key", Params{{"a", "1"}, {"a", "2"}}, "a=1&a=2"},
			{"escaped", Params{{"k y", "v&w=x"}}, "k+y=v%26w%3Dx"},
			{"empty value", Params{{"a", ""}}, "a="},
		}
		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.Equal(t, testCase.expected, testCase.params.Encode())
			})
		}
	})
	t.Run("Add", func(t *testing.T) {
		var p Params
		p = p.Add("x", "1").Add("y", "2")
		assert.Equal(t, Params{{"x", "1"}, {"y", "2"}}, p)
	})
	t.Run("ParamsFromValues", func(t *testing.T) {
		p := ParamsFromValues(url.Values{"b": {"2", "3"}, "a": {"1"}})
		assert.Equal(t, Params{{"a", "1"}, {"b", "2"}, {"b", "3"}}, p)
		assert.Empty(t, ParamsFromValues(nil))
	})
}

func TestArgs_withRedirectDefault(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var a *Args
		b := a.withRedirectDefault(false)
		require.NotNil(t, b.AllowRedirects)
		assert.False(t, *b.AllowRedirects)
	})
	t.Run("unset", func(t *testing.T) {
		a := &Args{Stream: true}
		b := a.withRedirectDefault(true)
		assert.NotSame(t, a, b)
		assert.Nil(t, a.AllowRedirects)
		require.NotNil(t, b.AllowRedirects)
		assert.True(t, *b.AllowRedirects)
		assert.True(t, b.Stream)
	})
	t.Run("set", func(t *testing.T) {
		f := false
		a := &Args{AllowRedirects: &f}
		assert.Same(t, a, a.withRedirectDefault(true))
	})
}

func TestArgs_spec(t *testing.T) {
	t.Run("context", func(t *testing.T) {
		s, err := (&Args{}).spec("GET", "test")
		require.NoError(t, err)
		assert.Equal(t, context.Background(), s.Context())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s, err = (&Args{Context: ctx}).spec("GET", "test")
		require.NoError(t, err)
		assert.Equal(t, ctx, s.Context())
	})
	t.Run("user agent", func(t *testing.T) {
		s, err := (&Args{}).spec("GET", "test")
		require.NoError(t, err)
		assert.Equal(t, DefaultUserAgent, s.Header.Get("User-Agent"))

		s, err = (&Args{Headers: map[string]string{"user-agent": "custom/2"}}).spec("GET", "test")
		require.NoError(t, err)
		assert.Equal(t, "custom/2", s.Header.Get("User-Agent"))
	})
	t.Run("reader data", func(t *testing.T) {
		s, err := (&Args{Data: strings.NewReader("abc")}).spec("POST", "test")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), s.Body)
		assert.Empty(t, s.Header.Get("Content-Type"))
	})
	t.Run("bytes data", func(t *testing.T) {
		s, err := (&Args{Data: []byte{1, 2}}).spec("POST", "test")
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, s.Body)
	})
	t.Run("typed nil payload is absent", func(t *testing.T) {
		var m map[string]string
		s, err := (&Args{JSON: m, Data: "raw"}).spec("POST", "test")
		require.NoError(t, err)
		assert.Equal(t, []byte("raw"), s.Body)
	})
	t.Run("non-string map key", func(t *testing.T) {
		_, err := (&Args{JSON: map[int]string{1: "a"}}).spec("POST", "test")
		assert.Equal(t, InvalidArgument, KindOf(err))
	})
	t.Run("string JSON", func(t *testing.T) {
		_, err := (&Args{JSON: "not an object"}).spec("POST", "test")
		assert.Equal(t, InvalidArgument, KindOf(err))
		assert.Contains(t, err.Error(), "unsupported payload type string")
	})
}
