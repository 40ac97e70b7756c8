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

package instrument

import (
	"io"
	"time"

	"github.com/uber-go/tally"
)

// MetricsConfiguration configures the root metrics scope.
type MetricsConfiguration struct {
	// Prefix is prepended to every metric name.
	Prefix string `yaml:"prefix"`

	// ReportingInterval is how often metrics are flushed to the reporter.
	ReportingInterval time.Duration `yaml:"reportingInterval" validate:"min=0"`

	// Tags are common tags applied to every metric.
	Tags map[string]string `yaml:"tags"`
}

// NewRootScope creates a root scope from the configuration. Metrics are
// collected in memory and flushed to a no-op reporter, callers that need
// an external sink pass it through NewRootScopeWithReporter.
func (c MetricsConfiguration) NewRootScope() (tally.Scope, io.Closer) {
	return c.NewRootScopeWithReporter(tally.NullStatsReporter)
}

// NewRootScopeWithReporter creates a root scope reporting to the given reporter.
func (c MetricsConfiguration) NewRootScopeWithReporter(
	reporter tally.StatsReporter,
) (tally.Scope, io.Closer) {
	interval := c.ReportingInterval
	if interval <= 0 {
		interval = defaultReportingInterval
	}
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   c.Prefix,
		Tags:     c.Tags,
		Reporter: reporter,
	}, interval)
}

// NewOptions builds instrument options carrying a root scope created from
// the configuration. The returned closer stops the scope's reporting loop.
func (c MetricsConfiguration) NewOptions(iopts Options) (Options, io.Closer) {
	scope, closer := c.NewRootScope()
	interval := c.ReportingInterval
	if interval <= 0 {
		interval = defaultReportingInterval
	}
	return iopts.SetMetricsScope(scope).SetReportInterval(interval), closer
}
