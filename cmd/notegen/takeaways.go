package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notegen/internal/engine"
	"github.com/pdiddy/notegen/pkg/types"
)

var takeawaysCmd = &cobra.Command{
	Use:   "takeaways",
	Short: "Propose and finalize takeaways for a strict-mode note",
	Long: `Takeaways runs the pipeline in strict mode, prints the scored takeaway
suggestions as a numbered list, and (with --select) finalizes the chosen
subset into the note before re-validating and printing it.

Without --select only the suggestion list is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExcerpt(cmd)
		if err != nil {
			return err
		}

		vocab, _ := cmd.Flags().GetString("vocab")
		title, _ := cmd.Flags().GetString("title")
		module, _ := cmd.Flags().GetString("module")

		eng := engine.New(engineConfig())
		res, err := eng.Generate(types.GenerateRequest{
			Text:             text,
			Strict:           true,
			DomainVocabulary: vocab,
			Title:            title,
			Module:           module,
		})
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}

		selectSpec, _ := cmd.Flags().GetString("select")
		if selectSpec == "" {
			for i, c := range res.Suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%d] %s\n", i+1, c.Score, c.Text)
			}
			return nil
		}

		selected, err := pickSuggestions(res.Suggestions, selectSpec)
		if err != nil {
			return err
		}
		vr := eng.FinalizeTakeaways(res.Note, selected)
		if !vr.IsValid {
			for _, e := range vr.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "validation:", e)
			}
		}
		return writeNote(cmd, res.Note, true)
	},
}

func init() {
	takeawaysCmd.Flags().String("input", "", "path to the excerpt file (default: stdin)")
	takeawaysCmd.Flags().String("vocab", "", "comma-separated domain vocabulary fed to the scorer")
	takeawaysCmd.Flags().String("title", "", "note title (default: derived from the excerpt)")
	takeawaysCmd.Flags().String("module", "", "course or module label")
	takeawaysCmd.Flags().String("select", "", "comma-separated 1-based suggestion indexes to finalize")
	takeawaysCmd.Flags().String("format", "markdown", "output format: markdown or yaml")
	takeawaysCmd.Flags().String("output", "", "write the note to a file instead of stdout")

	rootCmd.AddCommand(takeawaysCmd)
}

// pickSuggestions resolves a comma-separated 1-based index list against
// the suggestion slice.
func pickSuggestions(suggestions []types.Candidate, spec string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", part, err)
		}
		if idx < 1 || idx > len(suggestions) {
			return nil, fmt.Errorf("selection %d out of range [1,%d]", idx, len(suggestions))
		}
		out = append(out, suggestions[idx-1].Text)
	}
	return out, nil
}
