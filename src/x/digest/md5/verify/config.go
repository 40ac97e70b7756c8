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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/m3db/m3digest/src/x/instrument"
	xlog "github.com/m3db/m3digest/src/x/log"

	"go.uber.org/multierr"
)

const maxDefaultLabelLen = 64

// Configuration configures a verification run.
type Configuration struct {
	// Logging configures the logger.
	Logging xlog.Configuration `yaml:"logging"`

	// Metrics configures the metrics scope.
	Metrics instrument.MetricsConfiguration `yaml:"metrics"`

	// Concurrency is the number of vectors hashed in parallel, zero uses
	// the number of CPUs.
	Concurrency int `yaml:"concurrency" validate:"min=0"`

	// Trace enables logging of the chaining variables after every block.
	Trace bool `yaml:"trace"`

	// IncludeBuiltin runs the RFC 1321 suite ahead of the configured
	// vectors, defaults to true.
	IncludeBuiltin *bool `yaml:"includeBuiltin"`

	// Vectors are additional vectors to check.
	Vectors []VectorConfiguration `yaml:"vectors"`
}

// VectorConfiguration describes a single vector. Exactly one of Input or
// Hex provides the message.
type VectorConfiguration struct {
	Label    string `yaml:"label"`
	Input    string `yaml:"input,omitempty"`
	Hex      string `yaml:"hex,omitempty"`
	Repeat   int    `yaml:"repeat,omitempty"`
	Expected string `yaml:"expected"`
}

// Vector decodes the configured vector.
func (c VectorConfiguration) Vector() (Vector, error) {
	if c.Input != "" && c.Hex != "" {
		return Vector{}, fmt.Errorf("vector %q: input and hex are mutually exclusive", c.Label)
	}
	if c.Repeat < 0 {
		return Vector{}, fmt.Errorf("vector %q: repeat must be >= 0, got %d", c.Label, c.Repeat)
	}

	input := []byte(c.Input)
	if c.Hex != "" {
		decoded, err := hex.DecodeString(c.Hex)
		if err != nil {
			return Vector{}, fmt.Errorf("vector %q: invalid hex input: %v", c.Label, err)
		}
		input = decoded
	}
	if c.Repeat > 1 {
		input = []byte(strings.Repeat(string(input), c.Repeat))
	}

	expected := strings.ToLower(c.Expected)
	if _, err := hex.DecodeString(expected); err != nil || len(expected) != 32 {
		return Vector{}, fmt.Errorf("vector %q: expected digest must be 32 hex characters, got %q",
			c.Label, c.Expected)
	}

	label := c.Label
	if label == "" {
		label = c.defaultLabel()
	}

	return Vector{Label: label, Input: input, Expected: expected}, nil
}

// DecodeVectors returns the vectors to run, builtin vectors first.
func (c Configuration) DecodeVectors() ([]Vector, error) {
	var (
		vectors []Vector
		errs    error
	)
	if c.IncludeBuiltin == nil || *c.IncludeBuiltin {
		vectors = append(vectors, BuiltinVectors()...)
	}
	for _, vc := range c.Vectors {
		v, err := vc.Vector()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		vectors = append(vectors, v)
	}
	if errs != nil {
		return nil, errs
	}
	return vectors, nil
}

// defaultLabel names an unlabelled vector after its configured source.
func (c VectorConfiguration) defaultLabel() string {
	label := c.Input
	if c.Hex != "" {
		label = "0x" + strings.ToLower(c.Hex)
	}
	if len(label) > maxDefaultLabelLen {
		label = label[:maxDefaultLabelLen] + "..."
	}
	if c.Repeat > 1 {
		label = fmt.Sprintf("%s x %d", label, c.Repeat)
	}
	return label
}
