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
	"fmt"
	"io"
)

type nopReporter struct{}

func (nopReporter) Start(int) {}
func (nopReporter) Report(Result) {}
func (nopReporter) Done(Summary) {}

type textReporter struct {
	w io.Writer
}

// NewTextReporter returns a reporter printing one line per vector and a
// final tally to w.
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Start(int) {
	fmt.Fprintln(r.w, "MD5 Test Suite")
	fmt.Fprintln(r.w, "--------------")
}

func (r *textReporter) Report(result Result) {
	if result.Err != nil {
		fmt.Fprintf(r.w, "MD5(%q) [ERROR] %v\n", result.Vector.Label, result.Err)
		return
	}
	fmt.Fprintf(r.w, "MD5(%q) = %s", result.Vector.Label, result.Actual)
	if result.Passed {
		fmt.Fprintln(r.w, " [PASS]")
		return
	}
	fmt.Fprintln(r.w, " [FAIL]")
	fmt.Fprintf(r.w, "Expected: %s\n", result.Vector.Expected)
}

func (r *textReporter) Done(summary Summary) {
	if summary.OK() {
		fmt.Fprintln(r.w, "\nAll tests passed!")
		return
	}
	fmt.Fprintf(r.w, "\n%d tests failed.\n", summary.Total-summary.Passed)
}
