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
	"context"
	"time"

	"github.com/m3db/m3digest/src/x/digest/md5"
	"github.com/m3db/m3digest/src/x/instrument"
)

// Vector is a known input and its expected digest.
type Vector struct {
	Label    string
	Input    []byte
	Expected string
}

// Result is the outcome of checking a single vector.
type Result struct {
	Vector Vector
	Actual md5.Digest
	Passed bool
	Err    error
}

// Summary totals the results of a run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Duration time.Duration
}

// OK returns true when every vector passed.
func (s Summary) OK() bool {
	return s.Passed == s.Total
}

// Reporter receives results as a run completes.
type Reporter interface {
	// Start is called once before any result is reported.
	Start(total int)

	// Report is called once per vector, in input order.
	Report(result Result)

	// Done is called once after all results are reported.
	Done(summary Summary)
}

// Runner checks vectors against the digest engine.
type Runner interface {
	// Run hashes every vector, each in its own context, and reports the
	// results. It returns early with the context error if ctx is canceled
	// before all vectors are scheduled.
	Run(ctx context.Context, vectors []Vector) (Summary, error)
}

// Options provides a set of runner options.
type Options interface {
	// Validate validates the options.
	Validate() error

	// SetConcurrency sets the number of vectors hashed in parallel.
	SetConcurrency(value int) Options

	// Concurrency returns the number of vectors hashed in parallel.
	Concurrency() int

	// SetReporter sets the reporter.
	SetReporter(value Reporter) Options

	// Reporter returns the reporter.
	Reporter() Reporter

	// SetDigestOptions sets the options used for every digest context.
	SetDigestOptions(value md5.Options) Options

	// DigestOptions returns the options used for every digest context.
	DigestOptions() md5.Options

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options
}
