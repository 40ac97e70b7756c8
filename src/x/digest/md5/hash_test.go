// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package md5

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashImplementsInterface(t *testing.T) {
	h := New(NewOptions())
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())

	for _, v := range rfc1321Vectors {
		h.Reset()
		n, err := io.WriteString(h, v.input)
		require.NoError(t, err)
		require.Equal(t, len(v.input), n)
		require.Equal(t, v.expected, Hex(Digest(sumArray(h.Sum(nil)))))
	}
}

func TestHashSumAppendsAndContinues(t *testing.T) {
	h := New(NewOptions())

	_, err := io.WriteString(h, "message ")
	require.NoError(t, err)

	prefix := []byte("prefix")
	out := h.Sum(prefix)
	require.Equal(t, len(prefix)+Size, len(out))
	require.Equal(t, "prefix", string(out[:len(prefix)]))
	require.Equal(t, Sum([]byte("message ")), sumArray(out[len(prefix):]))

	_, err = io.Copy(h, strings.NewReader("digest"))
	require.NoError(t, err)
	require.Equal(t, "f96b697d7cb7938d525a2f31aaf161d0", Hex(sumArray(h.Sum(nil))))
}

func TestHashNilOptions(t *testing.T) {
	h := New(nil)
	_, err := h.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", Hex(sumArray(h.Sum(nil))))
}

func sumArray(b []byte) Digest {
	var d Digest
	copy(d[:], b)
	return d
}
