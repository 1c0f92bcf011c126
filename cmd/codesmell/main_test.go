// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelvolkmer/codesmell/internal/domain/model"
)

func TestParseExtensions(t *testing.T) {
	assert.Equal(t, []string{".cpp", ".c"}, parseExtensions("cpp,c"))
	assert.Equal(t, []string{".c", ".h"}, parseExtensions(" .c , .h ,"))
	assert.Empty(t, parseExtensions(""))
}

func parseAnalysisFlags(t *testing.T, args ...string) (*App, string) {
	t.Helper()

	app := NewApp()
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	analysisFlags(flagSet)

	root, err := app.parseFlags(flagSet, args)
	require.NoError(t, err)
	return app, root
}

func TestThresholdDefaults(t *testing.T) {
	app, root := parseAnalysisFlags(t)
	assert.Equal(t, ".", root)
	assert.Equal(t, model.DefaultThresholds(), app.thresholds())
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := "max-lines: 30\nmax-params: 5\nsimilarity: 0.9\nchecks: long_method\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".codesmell.yaml"), []byte(cfg), 0o644))

	t.Setenv("CODESMELL_MAX_PARAMS", "7")

	app, root := parseAnalysisFlags(t, "--similarity=0.5", dir)
	assert.Equal(t, dir, root)

	th := app.thresholds()
	assert.Equal(t, 30, th.MaxMethodLines, "config file")
	assert.Equal(t, 7, th.MaxParameters, "env beats config file")
	assert.Equal(t, 0.5, th.SimilarityThreshold, "flag beats config file")
	assert.Equal(t, 20, th.MaxNameLength, "default")
	assert.Equal(t, "long_method", app.config.GetString("checks"))
}

func TestExplicitConfigFileMissing(t *testing.T) {
	app := NewApp()
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	analysisFlags(flagSet)

	_, err := app.parseFlags(flagSet, []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestHelpFlag(t *testing.T) {
	app := NewApp()
	flagSet := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flagSet.Usage = func() {}
	analysisFlags(flagSet)

	_, err := app.parseFlags(flagSet, []string{"-h"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}
