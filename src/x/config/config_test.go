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

package config

import (
	"bytes"
	"testing"

	xtest "github.com/m3db/m3digest/src/x/test"

	"github.com/stretchr/testify/require"
)

const goodConfig = `
concurrency: 4
label: rfc1321
vectors:
    - abc
    - message digest
`

type configuration struct {
	Concurrency int      `yaml:"concurrency" validate:"min=1"`
	Label       string   `yaml:"label" validate:"nonzero"`
	Vectors     []string `yaml:"vectors" validate:"nonzero"`
}

func TestLoadFile(t *testing.T) {
	var cfg configuration

	err := LoadFile(&cfg, "./no-config.yaml")
	require.Error(t, err)

	// invalid yaml file
	err = LoadFile(&cfg, "./config.go")
	require.Error(t, err)

	fname, cleanup := xtest.TempFile(t, goodConfig)
	defer cleanup()

	err = LoadFile(&cfg, fname)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Concurrency)
	require.Equal(t, "rfc1321", cfg.Label)
	require.Equal(t, []string{"abc", "message digest"}, cfg.Vectors)
}

func TestLoadWithInvalidFile(t *testing.T) {
	var cfg configuration

	// no file provided
	err := LoadFiles(&cfg)
	require.Error(t, err)
	require.Equal(t, errNoFilesToLoad, err)

	// non-exist file provided
	err = LoadFiles(&cfg, "./no-config.yaml")
	require.Error(t, err)

	// invalid yaml file
	err = LoadFiles(&cfg, "./config.go")
	require.Error(t, err)

	fname, cleanup := xtest.TempFile(t, goodConfig)
	defer cleanup()

	// non-exist file in the file list
	err = LoadFiles(&cfg, fname, "./no-config.yaml")
	require.Error(t, err)

	// invalid file in the file list
	err = LoadFiles(&cfg, fname, "./config.go")
	require.Error(t, err)
}

func TestLoadFilesUnknownField(t *testing.T) {
	fname, cleanup := xtest.TempFile(t, goodConfig+"\nunknown: true\n")
	defer cleanup()

	var cfg configuration
	require.Error(t, LoadFiles(&cfg, fname))
}

func TestLoadFilesExtends(t *testing.T) {
	fname, cleanup := xtest.TempFile(t, goodConfig)
	defer cleanup()

	partialConfig := `
concurrency: 16
vectors:
    - a
`
	partial, cleanupPartial := xtest.TempFile(t, partialConfig)
	defer cleanupPartial()

	var cfg configuration
	err := LoadFiles(&cfg, fname, partial)
	require.NoError(t, err)

	require.Equal(t, "rfc1321", cfg.Label)
	require.Equal(t, 16, cfg.Concurrency)
	require.Equal(t, []string{"a"}, cfg.Vectors)
}

func TestLoadFilesValidateOnce(t *testing.T) {
	const invalidConfig1 = `
    label:
    concurrency: 2
    `

	const invalidConfig2 = `
    label: merged
    vectors:
      - abc
    `

	fname1, cleanup1 := xtest.TempFile(t, invalidConfig1)
	defer cleanup1()

	fname2, cleanup2 := xtest.TempFile(t, invalidConfig2)
	defer cleanup2()

	// Either config by itself will not pass validation.
	var cfg1 configuration
	require.Error(t, LoadFiles(&cfg1, fname1))

	var cfg2 configuration
	require.Error(t, LoadFiles(&cfg2, fname2))

	// But merging them together will pass validation.
	var mergedCfg configuration
	require.NoError(t, LoadFiles(&mergedCfg, fname1, fname2))
	require.Equal(t, "merged", mergedCfg.Label)
	require.Equal(t, 2, mergedCfg.Concurrency)
	require.Equal(t, []string{"abc"}, mergedCfg.Vectors)
}

func TestDump(t *testing.T) {
	cfg := configuration{
		Concurrency: 2,
		Label:       "dumped",
		Vectors:     []string{"abc"},
	}

	var buf bytes.Buffer
	require.NoError(t, Dump(cfg, &buf))

	fname, cleanup := xtest.TempFile(t, buf.String())
	defer cleanup()

	var loaded configuration
	require.NoError(t, LoadFile(&loaded, fname))
	require.Equal(t, cfg, loaded)
}
