package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

var tagsCmd = &cobra.Command{
	Use:   "tags <text>",
	Short: "Extract tags from a single value",
	Long: `Run the tag pipeline on one delimited value and print the tags, the
display string and the meta description.

Examples:
  tagsmith tags "Cats, Dogs"
  tagsmith tags "Machine Learning; AI" -d ";"`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().StringP("delimiter", "d", "", "tag delimiter (default from settings, \",\")")
	tagsCmd.Flags().Bool("json", false, "print as JSON")
	rootCmd.AddCommand(tagsCmd)
}

// tagsOutput is the JSON form of the tags command output.
type tagsOutput struct {
	Tags            []string `json:"tags"`
	Display         string   `json:"display"`
	MetaDescription string   `json:"meta_description"`
}

func runTags(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.Tags == nil {
		return errNotConfigured
	}
	settings, err := currentSettings(s)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	delimiter := settings.Extract.Delimiter
	if cmd.Flags().Changed("delimiter") {
		raw, _ := cmd.Flags().GetString("delimiter")
		delimiter = domain.UnescapeDelimiter(raw)
		if delimiter == "" {
			return fmt.Errorf("%w: --delimiter must not be empty", domain.ErrInvalidDelimiter)
		}
	}

	tags := s.Tags.ExtractTags(domain.Text(args[0]), delimiter)
	out := tagsOutput{
		Tags:            tags.Sorted(),
		Display:         s.Tags.FormatTagsForDisplay(tags),
		MetaDescription: s.Tags.CreateMetaDescription(tags),
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Tags (%d):\n", len(out.Tags))
	for _, tag := range out.Tags {
		fmt.Fprintf(w, "  %s\n", tag)
	}
	fmt.Fprintf(w, "Display: %s\n", out.Display)
	fmt.Fprintf(w, "Meta:    %s\n", out.MetaDescription)
	return nil
}
