package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/report"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables/csvfile"
	"github.com/custodia-labs/tagsmith/internal/adapters/driven/tables/jsonfile"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
	"github.com/custodia-labs/tagsmith/internal/core/ports/driven"
	coresvc "github.com/custodia-labs/tagsmith/internal/core/services"
	"github.com/custodia-labs/tagsmith/internal/normalisers/seo"
	"github.com/custodia-labs/tagsmith/internal/variations"
)

// blogCSV has one list-valued column with a blank and an NA cell.
const blogCSV = "Title,Blog Topics\nPost 1,\"Cats, Dogs\"\nPost 2,\nPost 3,Machine Learning\nPost 4,NA\n"

// setupTestServices installs in-memory services and restores the previous
// ones when the test ends.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	store := memory.NewConfigStore()
	tags := coresvc.NewTagService(seo.New(), variations.DefaultPipeline())
	s := &Services{
		Tags:   tags,
		Enrich: coresvc.NewEnrichService(tags, domain.DefaultAppSettings().Report, nil),
		Table: coresvc.NewTableService(
			[]driven.TableReader{csvfile.NewReader()},
			[]driven.TableWriter{csvfile.NewWriter(), jsonfile.NewWriter()},
			domain.DefaultAppSettings(),
		),
		Settings:   coresvc.NewSettingsService(store, nil),
		TextReport: report.NewTextRenderer(),
		JSONReport: report.NewJSONRenderer(),
		CSV:        csvfile.NewReader(),
		ConfigPath: store.Path(),
	}

	original := services
	SetServices(s)
	t.Cleanup(func() { services = original })
	return s
}

// writeFile writes content to name inside a fresh temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and fresh flag values.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag of cmd and its children to its default,
// since commands are package-level and keep values between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
