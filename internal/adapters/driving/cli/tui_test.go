package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/adapters/driving/tui/messages"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui <input>", tuiCmd.Use)
	require.NotNil(t, tuiCmd.Flags().Lookup("column"))
	require.NotNil(t, tuiCmd.Flags().Lookup("output"))
	require.NotNil(t, tuiCmd.Flags().Lookup("sheet"))
}

// newTUICommand returns a command carrying the tui flags, parsed from args.
func newTUICommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(tuiCmd.Flags())
	resetFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestNewTUIApp(t *testing.T) {
	s := setupTestServices(t)
	input := writeFile(t, "blog.csv", blogCSV)

	app, err := newTUIApp(newTUICommand(t, "-c", "Blog Topics"), s, input)
	require.NoError(t, err)

	assert.Equal(t, messages.ViewColumns, app.CurrentView())
	app.SetDimensions(100, 30)
	assert.Contains(t, app.View(), "[x]")
	assert.Contains(t, app.View(), "Blog Topics")
}

func TestNewTUIApp_LoadError(t *testing.T) {
	s := setupTestServices(t)

	_, err := newTUIApp(newTUICommand(t), s, "/does/not/exist.csv")
	assert.Error(t, err)
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)
	input := writeFile(t, "blog.csv", blogCSV)

	_, _, err := execute(t, "", "tui", input)
	assert.ErrorIs(t, err, errNotTerminal)
}
