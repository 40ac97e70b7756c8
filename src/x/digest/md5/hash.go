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
	"hash"
)

type digestHash struct {
	opts Options
	ctx  Context
}

// New returns a hash.Hash computing MD5 digests. Sum never finalizes the
// underlying context, so writes may continue after it.
func New(opts Options) hash.Hash {
	h := &digestHash{opts: opts}
	h.Reset()
	return h
}

func (h *digestHash) Write(p []byte) (int, error) {
	h.ctx.write(p)
	return len(p), nil
}

func (h *digestHash) Sum(b []byte) []byte {
	cc := h.ctx
	d := cc.checkSum()
	return append(b, d[:]...)
}

func (h *digestHash) Reset() {
	h.ctx = NewContext(h.opts)
}

func (h *digestHash) Size() int {
	return Size
}

func (h *digestHash) BlockSize() int {
	return BlockSize
}
