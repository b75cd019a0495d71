package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "tagsmith", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"extract", "tags", "columns", "settings", "mcp", "tui", "version"} {
		assert.True(t, names[name], "missing command %s", name)
	}
}

func TestSetup_UsesFactory(t *testing.T) {
	original, originalFactory := services, serviceFactory
	t.Cleanup(func() {
		services, serviceFactory = original, originalFactory
		logger.SetVerbose(false)
	})

	services = nil
	var gotDir string
	SetServiceFactory(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{ConfigPath: dir + "/config.toml"}, nil
	})

	stdout, _, err := execute(t, "", "--config-dir", "/tmp/ts", "-v", "settings", "path")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ts", gotDir)
	assert.Equal(t, "/tmp/ts/config.toml\n", stdout)
	assert.True(t, logger.IsVerbose())
}

func TestSetup_FactoryError(t *testing.T) {
	original, originalFactory := services, serviceFactory
	t.Cleanup(func() { services, serviceFactory = original, originalFactory })

	services = nil
	boom := errors.New("boom")
	SetServiceFactory(func(string) (*Services, error) { return nil, boom })

	_, _, err := execute(t, "", "tags", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "initialise")
}

func TestRequireServices_NotConfigured(t *testing.T) {
	original, originalFactory := services, serviceFactory
	t.Cleanup(func() { services, serviceFactory = original, originalFactory })

	services, serviceFactory = nil, nil

	_, _, err := execute(t, "", "tags", "x")
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestCurrentSettings_Defaults(t *testing.T) {
	settings, err := currentSettings(&Services{})
	require.NoError(t, err)
	assert.Equal(t, ",", settings.Extract.Delimiter)
}

func TestExecuteContext(t *testing.T) {
	setupTestServices(t)
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, ExecuteContext(ctx))
}
