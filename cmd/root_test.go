package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvibe/internal/collection"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "tvibe", rootCmd.Name())
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "tvibe version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "tvibe version 1.0.0\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = "0.9.0"

	var buf bytes.Buffer
	c := newVersionCmd()
	c.SetOut(&buf)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())
	assert.Equal(t, "tvibe version 0.9.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"version", "self-update", "pick", "mcp", "build"} {
		assert.True(t, registered[name], "subcommand %s", name)
	}
}

func TestRootFlags(t *testing.T) {
	shorthands := map[string]string{
		"theme": "t", "rand": "r", "dark": "d", "light": "l",
		"font": "f", "font-rand": "F", "show": "s",
	}
	for name, short := range shorthands {
		f := rootCmd.Flags().Lookup(name)
		if assert.NotNil(t, f, name) {
			assert.Equal(t, short, f.Shorthand, name)
		}
	}
	for _, name := range []string{"theme-list", "font-list", "show-toml", "show-fmt", "copy"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "log-level"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootFlagsOptions(t *testing.T) {
	opts := rootFlags{rand: true, dark: true, fontRand: true, show: true}.options(nil)
	assert.True(t, opts.Rand)
	assert.True(t, opts.FontRand)
	assert.True(t, opts.Show)
	require.NotNil(t, opts.Filter)
	assert.Equal(t, collection.FilterDark, *opts.Filter)

	opts = rootFlags{}.options([]string{"dracula"})
	assert.Equal(t, "dracula", opts.Theme)
	assert.Nil(t, opts.Filter, "no filter flag falls back to the config")

	opts = rootFlags{theme: "nord"}.options([]string{"dracula"})
	assert.Equal(t, "nord", opts.Theme, "the flag wins over the argument")

	opts = rootFlags{dark: true, light: true}.options(nil)
	require.NotNil(t, opts.Filter)
	assert.Equal(t, collection.FilterNone, *opts.Filter)
}

func TestRootFlagsHasAction(t *testing.T) {
	assert.False(t, rootFlags{}.hasAction(nil))
	assert.False(t, rootFlags{dark: true, show: true}.hasAction(nil))
	assert.True(t, rootFlags{}.hasAction([]string{"nord"}))
	assert.True(t, rootFlags{rand: true}.hasAction(nil))
	assert.True(t, rootFlags{fontList: true}.hasAction(nil))
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	testRootCmd := &cobra.Command{
		Use:          rootCmd.Use,
		Short:        rootCmd.Short,
		Long:         rootCmd.Long,
		SilenceUsage: true,
	}
	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})
	require.NoError(t, testRootCmd.Execute())

	assert.Contains(t, buf.String(), "tvibe")
	assert.Contains(t, buf.String(), "random dark theme")
}

func TestBuildCommand(t *testing.T) {
	src, err := filepath.Abs(filepath.Join("..", "colorschemes"))
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "themes.bin")

	var buf bytes.Buffer
	c := newBuildCmd()
	c.SetOut(&buf)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{src, "-o", out})
	require.NoError(t, c.Execute())
	assert.Contains(t, buf.String(), "themes into "+out)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "internal", "collection", "colorschemes.bin"))
	require.NoError(t, err)
	assert.Equal(t, want, got, "checked-in blob is up to date")

	assert.True(t, c.Hidden)
}

func TestBuildCommandRequiresDir(t *testing.T) {
	c := newBuildCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{})
	assert.Error(t, c.Execute())
}

func TestMCPCommandFlags(t *testing.T) {
	c := newMCPCmd()
	assert.Equal(t, "mcp", c.Name())
	assert.NotNil(t, c.Flags().Lookup("sse"))
}

func TestPickCommandFlags(t *testing.T) {
	c := newPickCmd()
	assert.Equal(t, "pick", c.Name())
	for _, name := range []string{"dark", "light", "font", "font-rand"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
}
