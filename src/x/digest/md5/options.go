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
	"errors"

	"github.com/m3db/m3digest/src/x/instrument"
)

var errNoInstrumentOptions = errors.New("md5 options: instrument options are not set")

type options struct {
	traceEnabled bool
	iOpts        instrument.Options
}

// NewOptions creates a new set of digest options with tracing disabled.
func NewOptions() Options {
	return options{
		iOpts: instrument.NewOptions(),
	}
}

func (o options) Validate() error {
	if o.iOpts == nil {
		return errNoInstrumentOptions
	}
	return o.iOpts.Validate()
}

func (o options) SetTraceEnabled(value bool) Options {
	o.traceEnabled = value
	return o
}

func (o options) TraceEnabled() bool {
	return o.traceEnabled
}

func (o options) SetInstrumentOptions(value instrument.Options) Options {
	o.iOpts = value
	return o
}

func (o options) InstrumentOptions() instrument.Options {
	return o.iOpts
}
