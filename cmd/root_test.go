package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"serve", "import", "snapshots", "export", "stats", "config"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "quake-explorer", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)

	snap := serveCmd.Flags().Lookup("snapshot")
	require.NotNil(t, snap, "serve command should have --snapshot flag")
	assert.Equal(t, "false", snap.DefValue)
}

func TestExportCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"out", "min-mag", "start", "end", "district", "top"} {
		flag := exportCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "export should have --%s flag", flagName)
	}
	assert.Equal(t, "quakes.xlsx", exportCmd.Flags().Lookup("out").DefValue)
}

func TestConfigCommand_HasSubcommands(t *testing.T) {
	cmds := configCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"init", "validate"} {
		assert.True(t, names[name], "config should have subcommand %q", name)
	}
}
