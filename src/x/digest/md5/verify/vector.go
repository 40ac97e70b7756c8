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

package verify

import "strings"

// BuiltinVectors returns the RFC 1321 test suite.
func BuiltinVectors() []Vector {
	return []Vector{
		{Label: "", Input: []byte(""), Expected: "d41d8cd98f00b204e9800998ecf8427e"},
		{Label: "a", Input: []byte("a"), Expected: "0cc175b9c0f1b6a831c399e269772661"},
		{Label: "abc", Input: []byte("abc"), Expected: "900150983cd24fb0d6963f7d28e17f72"},
		{Label: "message digest", Input: []byte("message digest"), Expected: "f96b697d7cb7938d525a2f31aaf161d0"},
		{
			Label:    "abcdefghijklmnopqrstuvwxyz",
			Input:    []byte("abcdefghijklmnopqrstuvwxyz"),
			Expected: "c3fcd3d76192e4007dfb496cca67e13b",
		},
		{
			Label:    "A...Za...z0...9",
			Input:    []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"),
			Expected: "d174ab98d277d9f5a5611c2c9f419d9f",
		},
		{
			Label:    "8 times 1234567890",
			Input:    []byte(strings.Repeat("1234567890", 8)),
			Expected: "57edf4a22be3c955ac49da2e2107b67a",
		},
	}
}
