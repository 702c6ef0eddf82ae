// Copyright 2021 The requests Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
)

const badBodyTypeMsg = "requests/request: unsupported payload type (for a raw body use " +
	"nil, string, []byte, io.Reader or io.ReadCloser)"

// ErrUnsupportedBody is returned by BodyBytes when the body parameter
// has a type it does not know how to encode.
var ErrUnsupportedBody = errors.New(badBodyTypeMsg)

// BodyBytes converts a raw body parameter to a byte slice for use as a
// request spec body.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, a nil byte slice and no error is returned.
//
// • If body is a []byte, body itself and no error is returned.
//
// • If body is a string, the built-in conversion from string to byte
// slice, and no error, is returned.
//
// • If body is an io.Reader or io.ReadCloser, the result of reading
// the whole contents of the reader (and closing it if it implements
// Closer) is returned. If reading from the reader (and closing it if
// applicable) causes an error, the return value is a nil byte slice
// and the error.
//
// • If body is any other type than those listed above, a nil byte slice
// and ErrUnsupportedBody is returned.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := ioutil.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return BodyBytes(ioutil.NopCloser(x))
	default:
		return nil, ErrUnsupportedBody
	}
}

func bodyFuncs(b []byte) (io.ReadCloser, func() (io.ReadCloser, error)) {
	return ioutil.NopCloser(bytes.NewReader(b)), func() (io.ReadCloser, error) {
		return ioutil.NopCloser(bytes.NewReader(b)), nil
	}
}
