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

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/m3db/m3digest/src/x/digest/md5"
	"github.com/m3db/m3digest/src/x/instrument"
)

var (
	defaultConcurrency = runtime.NumCPU()

	errNoReporter          = errors.New("verify options: reporter is not set")
	errNoDigestOptions     = errors.New("verify options: digest options are not set")
	errNoInstrumentOptions = errors.New("verify options: instrument options are not set")
)

type options struct {
	concurrency int
	reporter    Reporter
	digestOpts  md5.Options
	iOpts       instrument.Options
}

// NewOptions creates new runner options. The default reporter discards
// results.
func NewOptions() Options {
	return &options{
		concurrency: defaultConcurrency,
		reporter:    nopReporter{},
		digestOpts:  md5.NewOptions(),
		iOpts:       instrument.NewOptions(),
	}
}

func (o *options) Validate() error {
	if o.concurrency < 1 {
		return fmt.Errorf("concurrency value %d must be >= 1", o.concurrency)
	}
	if o.reporter == nil {
		return errNoReporter
	}
	if o.digestOpts == nil {
		return errNoDigestOptions
	}
	if err := o.digestOpts.Validate(); err != nil {
		return err
	}
	if o.iOpts == nil {
		return errNoInstrumentOptions
	}
	return o.iOpts.Validate()
}

func (o *options) SetConcurrency(value int) Options {
	opts := *o
	opts.concurrency = value
	return &opts
}

func (o *options) Concurrency() int {
	return o.concurrency
}

func (o *options) SetReporter(value Reporter) Options {
	opts := *o
	opts.reporter = value
	return &opts
}

func (o *options) Reporter() Reporter {
	return o.reporter
}

func (o *options) SetDigestOptions(value md5.Options) Options {
	opts := *o
	opts.digestOpts = value
	return &opts
}

func (o *options) DigestOptions() md5.Options {
	return o.digestOpts
}

func (o *options) SetInstrumentOptions(value instrument.Options) Options {
	opts := *o
	opts.iOpts = value
	return &opts
}

func (o *options) InstrumentOptions() instrument.Options {
	return o.iOpts
}
