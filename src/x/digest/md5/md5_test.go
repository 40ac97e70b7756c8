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
	stdmd5 "crypto/md5"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testVector struct {
	input    string
	expected string
}

var rfc1321Vectors = []testVector{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
	{strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},
}

func testPattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	return b
}

func TestKnownVectors(t *testing.T) {
	for _, v := range rfc1321Vectors {
		t.Run(fmt.Sprintf("%q", v.input), func(t *testing.T) {
			c := Init()
			require.NoError(t, c.Update([]byte(v.input)))
			d, err := c.Finalize()
			require.NoError(t, err)
			require.Equal(t, v.expected, d.String())
			require.Equal(t, v.expected, Hex(Sum([]byte(v.input))))
		})
	}
}

func TestBoundaryLengths(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129, 1000} {
		input := testPattern(n)
		expected := stdmd5.Sum(input)

		c := Init()
		require.NoError(t, c.Update(input))
		d, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, Digest(expected), d, "length %d", n)
	}
}

func TestPaddingBlockCount(t *testing.T) {
	tests := []struct {
		length         int
		expectedBlocks uint64
	}{
		{length: 0, expectedBlocks: 1},
		{length: 55, expectedBlocks: 1},
		{length: 56, expectedBlocks: 2},
		{length: 63, expectedBlocks: 2},
		{length: 64, expectedBlocks: 2},
		{length: 65, expectedBlocks: 2},
		{length: 119, expectedBlocks: 2},
		{length: 120, expectedBlocks: 3},
	}

	for _, test := range tests {
		c := Init()
		require.NoError(t, c.Update(testPattern(test.length)))
		_, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, test.expectedBlocks, c.blocks, "length %d", test.length)
		require.Equal(t, uint64(test.length), c.Len())
	}
}

func TestInitState(t *testing.T) {
	c := Init()
	require.Equal(t, [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}, c.s)
	require.Equal(t, 0, c.nx)
	require.Equal(t, uint64(0), c.Len())
	require.False(t, c.Finalized())
}

func TestUpdateBuffersPartialBlocks(t *testing.T) {
	c := Init()
	initial := c.s

	require.NoError(t, c.Update(testPattern(63)))
	require.Equal(t, 63, c.nx)
	require.Equal(t, initial, c.s)

	require.NoError(t, c.Update(testPattern(1)))
	require.Equal(t, 0, c.nx)
	require.NotEqual(t, initial, c.s)

	require.NoError(t, c.Update(testPattern(130)))
	require.Equal(t, 2, c.nx)
	require.Equal(t, uint64(194), c.Len())
	require.Equal(t, uint64(3), c.blocks)
}

func TestUpdateEmptyIsNoop(t *testing.T) {
	c := Init()
	require.NoError(t, c.Update(testPattern(10)))
	before := c

	require.NoError(t, c.Update(nil))
	require.NoError(t, c.Update([]byte{}))
	require.Equal(t, before, c)
}

func TestUpdateAfterFinalize(t *testing.T) {
	c := Init()
	require.NoError(t, c.Update([]byte("abc")))
	d, err := c.Finalize()
	require.NoError(t, err)
	require.True(t, c.Finalized())

	before := c
	err = c.Update([]byte("more"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUseAfterFinalize))

	var misuse *MisuseError
	require.True(t, errors.As(err, &misuse))
	require.Equal(t, opUpdate, misuse.Op)
	require.Equal(t, before, c)

	_, err = c.Finalize()
	require.True(t, errors.Is(err, ErrUseAfterFinalize))
	require.Equal(t, "md5: finalize called on finalized context", err.Error())

	_, err = c.Checksum()
	require.True(t, errors.Is(err, ErrUseAfterFinalize))

	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", d.String())
}

func TestChecksumIsNonDestructive(t *testing.T) {
	c := Init()
	require.NoError(t, c.Update([]byte("message ")))

	partial, err := c.Checksum()
	require.NoError(t, err)
	require.Equal(t, Sum([]byte("message ")), partial)
	require.False(t, c.Finalized())

	require.NoError(t, c.Update([]byte("digest")))
	d, err := c.Finalize()
	require.NoError(t, err)
	require.Equal(t, "f96b697d7cb7938d525a2f31aaf161d0", d.String())
}

func TestIncrementalSplits(t *testing.T) {
	input := testPattern(300)
	expected := Sum(input)

	for _, chunk := range []int{1, 3, 7, 55, 56, 63, 64, 65, 128, 299} {
		c := Init()
		for p := input; len(p) > 0; {
			n := chunk
			if n > len(p) {
				n = len(p)
			}
			require.NoError(t, c.Update(p[:n]))
			p = p[n:]
		}
		d, err := c.Finalize()
		require.NoError(t, err)
		require.Equal(t, expected, d, "chunk size %d", chunk)
	}
}

func TestLenCountsBytes(t *testing.T) {
	c := Init()
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Update(testPattern(33)))
	}
	require.Equal(t, uint64(330), c.Len())
}

func TestHexFormat(t *testing.T) {
	var d Digest
	for i := range d {
		d[i] = byte(i * 17)
	}
	require.Equal(t, "00112233445566778899aabbccddeeff", Hex(d))
	require.Equal(t, 2*Size, len(Hex(Sum(nil))))
	require.Equal(t, strings.ToLower(Hex(d)), Hex(d))
}

func TestZeroValueContextDiffersFromInit(t *testing.T) {
	var c Context
	require.NoError(t, c.Update([]byte("abc")))
	d, err := c.Finalize()
	require.NoError(t, err)
	require.NotEqual(t, Sum([]byte("abc")), d)
}
