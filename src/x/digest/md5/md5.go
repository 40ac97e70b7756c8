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

// Package md5 implements the MD5 message-digest algorithm as defined in RFC 1321.
//
// A Context is driven through Init, any number of Update calls and a single
// Finalize. It holds no references to process-wide state, so independent
// contexts may be used concurrently; a single context may not.
package md5

import (
	"encoding/binary"
	"encoding/hex"

	"go.uber.org/zap"
)

const (
	// Size is the size of an MD5 digest in bytes.
	Size = 16

	// BlockSize is the block size of MD5 in bytes.
	BlockSize = 64

	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476

	// lengthOffset is where the message length starts in the final block.
	lengthOffset = BlockSize - 8
)

// Digest is a computed MD5 digest.
type Digest [Size]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string {
	return Hex(d)
}

// Hex formats a digest as 32 lowercase hex characters in byte order.
func Hex(d Digest) string {
	return hex.EncodeToString(d[:])
}

// Context is the running state of a digest computation.
type Context struct {
	s         [4]uint32
	x         [BlockSize]byte
	nx        int
	len       uint64
	blocks    uint64
	finalized bool
	tracer    *zap.Logger
}

// Init returns a context ready to accept input, with tracing disabled.
func Init() Context {
	return Context{s: [4]uint32{init0, init1, init2, init3}}
}

// NewContext returns a context ready to accept input using the given options.
func NewContext(opts Options) Context {
	c := Init()
	if opts == nil || !opts.TraceEnabled() {
		return c
	}
	if iOpts := opts.InstrumentOptions(); iOpts != nil {
		c.tracer = iOpts.Logger()
	}
	return c
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) Digest {
	c := Init()
	c.write(data)
	return c.checkSum()
}

// Update adds p to the running digest. It fails only if the context has
// already been finalized, in which case the state is left untouched.
func (c *Context) Update(p []byte) error {
	if c.finalized {
		return &MisuseError{Op: opUpdate}
	}
	c.write(p)
	return nil
}

// Finalize pads the message, returns its digest and retires the context.
func (c *Context) Finalize() (Digest, error) {
	if c.finalized {
		return Digest{}, &MisuseError{Op: opFinalize}
	}
	cc := *c
	d := cc.checkSum()
	c.blocks = cc.blocks
	c.finalized = true
	return d, nil
}

// Checksum returns the digest of the input written so far without
// finalizing the context, so more input may follow.
func (c *Context) Checksum() (Digest, error) {
	if c.finalized {
		return Digest{}, &MisuseError{Op: opChecksum}
	}
	cc := *c
	return cc.checkSum(), nil
}

// Finalized returns whether Finalize has run.
func (c *Context) Finalized() bool {
	return c.finalized
}

// Len returns the number of bytes written so far.
func (c *Context) Len() uint64 {
	return c.len
}

func (c *Context) write(p []byte) {
	c.len += uint64(len(p))
	if c.nx > 0 {
		n := copy(c.x[c.nx:], p)
		c.nx += n
		if c.nx < BlockSize {
			return
		}
		c.compress(c.x[:])
		c.nx = 0
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		c.compress(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		c.nx = copy(c.x[:], p)
	}
}

func (c *Context) compress(p []byte) {
	for len(p) >= BlockSize {
		block(&c.s, p[:BlockSize])
		c.blocks++
		if c.tracer != nil {
			c.tracer.Debug("md5 block compressed",
				zap.Uint64("block", c.blocks),
				zap.Uint32("a", c.s[0]),
				zap.Uint32("b", c.s[1]),
				zap.Uint32("c", c.s[2]),
				zap.Uint32("d", c.s[3]))
		}
		p = p[BlockSize:]
	}
}

// checkSum appends the padding and length and serializes the state. The
// length field holds the bit count of the message before padding.
func (c *Context) checkSum() Digest {
	var (
		bitLen = c.len << 3
		tmp    [BlockSize + 8]byte
		pad    = lengthOffset - int(c.len%BlockSize)
	)
	if pad <= 0 {
		pad += BlockSize
	}
	tmp[0] = 0x80
	binary.LittleEndian.PutUint64(tmp[pad:], bitLen)
	c.write(tmp[:pad+8])

	if c.nx != 0 {
		panic("md5: partial block after padding")
	}

	var d Digest
	for i, s := range c.s {
		binary.LittleEndian.PutUint32(d[4*i:], s)
	}
	return d
}
