package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "")
	pf.String("lang", "en", "")
	pf.String("output", "json", "")
	pf.String("display-key", "x-display", "")
	pf.Int("max-reference-passes", 0, "")
	pf.String("crd-kind", "", "")
	pf.Bool("verbose", false, "")
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newCmd())
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "x-display", cfg.DisplayKey)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("language: ja\noutput: yaml\nmax_reference_passes: 7\n"), 0o644))

	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", file))
	require.NoError(t, cmd.PersistentFlags().Set("output", "json"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, "json", cfg.Output, "flag must win over file")
	assert.Equal(t, 7, cfg.MaxReferencePasses)
}

func TestLoad_RejectsUnknownOutput(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("output", "xml"))
	_, err := Load(cmd)
	require.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	cmd := newCmd()
	require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")))
	_, err := Load(cmd)
	require.Error(t, err)
}
