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

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/m3db/m3digest/src/x/digest/md5"
	"github.com/m3db/m3digest/src/x/instrument"
	xlog "github.com/m3db/m3digest/src/x/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sumArgs struct {
	hexInput bool
	trace    bool
	logLevel string
}

func newSumCommand() *cobra.Command {
	var args sumArgs
	cmd := &cobra.Command{
		Use:   "sum [strings...]",
		Short: "Print the MD5 digest of each argument",
		Example: `# Digest of a string:
md5tool sum "message digest"

# Digest of raw bytes given as hex, tracing every block:
md5tool sum --hex --trace 616263`,
		RunE: func(cmd *cobra.Command, inputs []string) error {
			return runSum(cmd, args, inputs)
		},
	}
	cmd.Flags().BoolVar(&args.hexInput, "hex", false, "Treat arguments as hex encoded bytes")
	cmd.Flags().BoolVar(&args.trace, "trace", false, "Log the chaining variables after every block")
	cmd.Flags().StringVar(&args.logLevel, "log-level", "debug", "Log level used when tracing")
	return cmd
}

func runSum(cmd *cobra.Command, args sumArgs, inputs []string) error {
	opts := md5.NewOptions()
	if args.trace {
		logger, err := xlog.Configuration{
			Level:    args.logLevel,
			Encoding: "console",
		}.BuildLogger()
		if err != nil {
			return fmt.Errorf("unable to create logger: %v", err)
		}
		defer logger.Sync()

		opts = opts.
			SetTraceEnabled(true).
			SetInstrumentOptions(instrument.NewOptions().SetLogger(logger))
	}

	if len(inputs) == 0 {
		inputs = []string{""}
	}

	out := cmd.OutOrStdout()
	for _, input := range inputs {
		data := []byte(input)
		if args.hexInput {
			decoded, err := hex.DecodeString(input)
			if err != nil {
				return fmt.Errorf("invalid hex argument %q: %v", input, err)
			}
			data = decoded
		}

		c := md5.NewContext(opts)
		if err := c.Update(data); err != nil {
			return err
		}
		d, err := c.Finalize()
		if err != nil {
			return err
		}
		opts.InstrumentOptions().Logger().Debug("digest computed",
			zap.Int("bytes", len(data)),
			zap.Stringer("digest", d))
		fmt.Fprintf(out, "%s  %q\n", d, input)
	}
	return nil
}
