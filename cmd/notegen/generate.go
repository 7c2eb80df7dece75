package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notegen/internal/engine"
	"github.com/pdiddy/notegen/internal/render"
	"github.com/pdiddy/notegen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study note from an excerpt",
	Long: `Generate runs the extraction pipeline over one excerpt and prints the
assembled note. The excerpt is read from --input or stdin. Strict mode
raises the word-count threshold, attaches evidence quotes to answers, and
defers takeaway selection to the takeaways subcommand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readExcerpt(cmd)
		if err != nil {
			return err
		}

		strict, _ := cmd.Flags().GetBool("strict")
		vocab, _ := cmd.Flags().GetString("vocab")
		title, _ := cmd.Flags().GetString("title")
		module, _ := cmd.Flags().GetString("module")

		eng := engine.New(engineConfig())
		res, err := eng.Generate(types.GenerateRequest{
			Text:             text,
			Strict:           strict,
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
		if strict {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d takeaway suggestions; run 'notegen takeaways' to select\n", len(res.Suggestions))
		}
		if !res.Note.IsValid {
			for _, e := range res.Note.ValidationErrors {
				fmt.Fprintln(cmd.ErrOrStderr(), "validation:", e)
			}
		}

		return writeNote(cmd, res.Note, strict)
	},
}

func init() {
	generateCmd.Flags().String("input", "", "path to the excerpt file (default: stdin)")
	generateCmd.Flags().Bool("strict", false, "strict mode: evidence quotes, deferred takeaways, higher word threshold")
	generateCmd.Flags().String("vocab", "", "comma-separated domain vocabulary fed to the scorer")
	generateCmd.Flags().String("title", "", "note title (default: derived from the excerpt)")
	generateCmd.Flags().String("module", "", "course or module label")
	generateCmd.Flags().String("format", "markdown", "output format: markdown or yaml")
	generateCmd.Flags().String("output", "", "write the note to a file instead of stdout")

	rootCmd.AddCommand(generateCmd)
}

// readExcerpt loads the excerpt from --input or stdin.
func readExcerpt(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("input")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading excerpt: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// writeNote renders the note in the requested format and writes it to
// --output or stdout.
func writeNote(cmd *cobra.Command, n *types.Note, strict bool) error {
	format, _ := cmd.Flags().GetString("format")
	var out string
	switch types.OutputFormat(strings.ToLower(format)) {
	case types.OutputMarkdown, "":
		out = render.Markdown(n, strict)
	case types.OutputYAML:
		var err error
		out, err = render.YAML(n)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q: want markdown or yaml", format)
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "wrote", path)
	return nil
}
