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

// Package configflag registers the standard config file flags on a command.
package configflag

import (
	"errors"
	"fmt"
	"io"

	"github.com/m3db/m3digest/src/x/config"

	"github.com/spf13/pflag"
)

var errNoConfigFiles = errors.New("-f is required (no config files provided)")

// Options represents the values of config command line flags.
type Options struct {
	// ConfigFiles (-f) is a list of config files to load.
	ConfigFiles []string

	// ShouldDumpConfigAndExit (-d) causes MainLoad to print config to the
	// output writer and report that the caller should exit.
	ShouldDumpConfigAndExit bool

	// Optional allows MainLoad to succeed with no config files, leaving the
	// target at its zero value.
	Optional bool
}

// RegisterFlagSet registers commandline options with the given flagset.
func (opts *Options) RegisterFlagSet(cmd *pflag.FlagSet) {
	cmd.StringSliceVarP(&opts.ConfigFiles, "config", "f", nil, "Configuration files to load")
	cmd.BoolVarP(&opts.ShouldDumpConfigAndExit, "dump", "d", false, "Dump configuration and exit")
}

// MainLoad is a convenience method, intended for use in commands, which handles
// all config commandline options. It loads configuration and, if -d was passed,
// dumps it to out and returns exit=true.
func (opts *Options) MainLoad(target interface{}, out io.Writer) (exit bool, err error) {
	if len(opts.ConfigFiles) == 0 {
		if !opts.Optional {
			return false, errNoConfigFiles
		}
	} else if err := config.LoadFiles(target, opts.ConfigFiles...); err != nil {
		return false, fmt.Errorf("unable to load config from %s: %v", opts.ConfigFiles, err)
	}

	if opts.ShouldDumpConfigAndExit {
		if err := config.Dump(target, out); err != nil {
			return false, fmt.Errorf("failed to dump config: %v", err)
		}
		return true, nil
	}
	return false, nil
}
