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

// Package verify checks the digest engine against known test vectors.
package verify

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m3db/m3digest/src/x/digest/md5"
	xsync "github.com/m3db/m3digest/src/x/sync"

	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type runnerMetrics struct {
	passed  tally.Counter
	failed  tally.Counter
	errored tally.Counter
	latency tally.Timer
}

func newRunnerMetrics(scope tally.Scope) runnerMetrics {
	scope = scope.SubScope("verify").SubScope("vectors")
	return runnerMetrics{
		passed:  scope.Counter("passed"),
		failed:  scope.Counter("failed"),
		errored: scope.Counter("errors"),
		latency: scope.Timer("latency"),
	}
}

type runner struct {
	opts    Options
	logger  *zap.Logger
	metrics runnerMetrics
}

// NewRunner creates a new runner.
func NewRunner(opts Options) (Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	iOpts := opts.InstrumentOptions()
	return &runner{
		opts:    opts,
		logger:  iOpts.Logger(),
		metrics: newRunnerMetrics(iOpts.MetricsScope()),
	}, nil
}

func (r *runner) Run(ctx context.Context, vectors []Vector) (Summary, error) {
	var (
		start    = time.Now()
		results  = make([]Result, len(vectors))
		passed   = atomic.NewInt64(0)
		failed   = atomic.NewInt64(0)
		errored  = atomic.NewInt64(0)
		reporter = r.opts.Reporter()
		pool     = xsync.NewWorkerPool(r.opts.Concurrency())
		wg       sync.WaitGroup
	)
	pool.Init()

	r.logger.Debug("verifying vectors",
		zap.Int("vectors", len(vectors)),
		zap.Int("concurrency", pool.Size()))

	reporter.Start(len(vectors))
	for i := range vectors {
		i := i
		wg.Add(1)
		scheduled := pool.GoWithContext(ctx, func() {
			defer wg.Done()
			result := r.check(vectors[i])
			switch {
			case result.Err != nil:
				errored.Inc()
			case result.Passed:
				passed.Inc()
			default:
				failed.Inc()
			}
			results[i] = result
		})
		if !scheduled {
			wg.Done()
			wg.Wait()
			r.logger.Warn("verification canceled",
				zap.Int("scheduled", i),
				zap.Int("vectors", len(vectors)),
				zap.Error(ctx.Err()))
			return Summary{}, ctx.Err()
		}
	}
	wg.Wait()

	summary := Summary{
		Total:    len(vectors),
		Passed:   int(passed.Load()),
		Failed:   int(failed.Load()),
		Errored:  int(errored.Load()),
		Duration: time.Since(start),
	}
	for _, result := range results {
		reporter.Report(result)
	}
	reporter.Done(summary)

	if !summary.OK() {
		r.logger.Warn("vectors failed verification",
			zap.Int("failed", summary.Failed),
			zap.Int("errors", summary.Errored),
			zap.Int("total", summary.Total))
	}
	return summary, nil
}

func (r *runner) check(v Vector) Result {
	var (
		start  = time.Now()
		c      = md5.NewContext(r.opts.DigestOptions())
		result = Result{Vector: v}
	)

	if err := c.Update(v.Input); err != nil {
		result.Err = err
		r.metrics.errored.Inc(1)
		return result
	}
	d, err := c.Finalize()
	r.metrics.latency.Record(time.Since(start))
	if err != nil {
		result.Err = err
		r.metrics.errored.Inc(1)
		return result
	}

	result.Actual = d
	result.Passed = strings.EqualFold(d.String(), v.Expected)
	if result.Passed {
		r.metrics.passed.Inc(1)
	} else {
		r.metrics.failed.Inc(1)
		r.logger.Debug("digest mismatch",
			zap.String("label", v.Label),
			zap.Stringer("actual", d),
			zap.String("expected", v.Expected))
	}
	return result
}
