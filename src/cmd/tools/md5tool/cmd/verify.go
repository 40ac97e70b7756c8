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
	"errors"
	"fmt"
	"runtime"

	"github.com/m3db/m3digest/src/x/config/configflag"
	"github.com/m3db/m3digest/src/x/digest/md5"
	"github.com/m3db/m3digest/src/x/digest/md5/verify"
	"github.com/m3db/m3digest/src/x/instrument"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errVerificationFailed = errors.New("verification failed")

type verifyArgs struct {
	cfgOpts   configflag.Options
	noBuiltin bool
}

func newVerifyCommand() *cobra.Command {
	args := verifyArgs{cfgOpts: configflag.Options{Optional: true}}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the digest engine against known vectors",
		Long: "Verify hashes the RFC 1321 test suite and any vectors from the given " +
			"configuration files, printing PASS or FAIL for each.",
		Example: `# Built-in suite only:
md5tool verify

# Additional vectors, merged from two files:
md5tool verify -f vectors.yaml -f more.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, args)
		},
	}
	args.cfgOpts.RegisterFlagSet(cmd.Flags())
	cmd.Flags().BoolVar(&args.noBuiltin, "no-builtin", false, "Skip the built-in RFC 1321 vectors")
	return cmd
}

func runVerify(cmd *cobra.Command, args verifyArgs) error {
	var cfg verify.Configuration
	exit, err := args.cfgOpts.MainLoad(&cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if exit {
		return nil
	}
	if args.noBuiltin {
		includeBuiltin := false
		cfg.IncludeBuiltin = &includeBuiltin
	}

	logger, err := cfg.Logging.BuildLogger()
	if err != nil {
		return fmt.Errorf("unable to create logger: %v", err)
	}
	defer logger.Sync()

	iOpts, closer := cfg.Metrics.NewOptions(instrument.NewOptions().SetLogger(logger))
	defer closer.Close()

	vectors, err := cfg.DecodeVectors()
	if err != nil {
		return fmt.Errorf("unable to decode vectors: %v", err)
	}
	if len(vectors) == 0 {
		return errors.New("no vectors to verify")
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = runtime.NumCPU()
	}
	digestOpts := md5.NewOptions().
		SetTraceEnabled(cfg.Trace).
		SetInstrumentOptions(iOpts)

	runner, err := verify.NewRunner(verify.NewOptions().
		SetConcurrency(concurrency).
		SetReporter(verify.NewTextReporter(cmd.OutOrStdout())).
		SetDigestOptions(digestOpts).
		SetInstrumentOptions(iOpts))
	if err != nil {
		return err
	}

	logger.Info("verifying digest engine", zap.Int("vectors", len(vectors)))
	summary, err := runner.Run(commandContext(cmd), vectors)
	if err != nil {
		return err
	}
	if !summary.OK() {
		return errVerificationFailed
	}
	return nil
}
