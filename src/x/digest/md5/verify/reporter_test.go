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
	"bytes"
	"errors"
	"testing"

	"github.com/m3db/m3digest/src/x/digest/md5"

	"github.com/stretchr/testify/require"
)

func TestTextReporterAllPassed(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	v := BuiltinVectors()[2]
	r.Start(1)
	r.Report(Result{Vector: v, Actual: md5.Sum(v.Input), Passed: true})
	r.Done(Summary{Total: 1, Passed: 1})

	expected := "MD5 Test Suite\n" +
		"--------------\n" +
		"MD5(\"abc\") = 900150983cd24fb0d6963f7d28e17f72 [PASS]\n" +
		"\nAll tests passed!\n"
	require.Equal(t, expected, buf.String())
}

func TestTextReporterFailures(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	v := Vector{Label: "", Input: nil, Expected: "00000000000000000000000000000000"}
	r.Start(2)
	r.Report(Result{Vector: v, Actual: md5.Sum(nil)})
	r.Report(Result{Vector: Vector{Label: "x"}, Err: errors.New("boom")})
	r.Done(Summary{Total: 2, Failed: 1, Errored: 1})

	expected := "MD5 Test Suite\n" +
		"--------------\n" +
		"MD5(\"\") = d41d8cd98f00b204e9800998ecf8427e [FAIL]\n" +
		"Expected: 00000000000000000000000000000000\n" +
		"MD5(\"x\") [ERROR] boom\n" +
		"\n2 tests failed.\n"
	require.Equal(t, expected, buf.String())
}
