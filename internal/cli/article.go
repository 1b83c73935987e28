package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikireader/pkg/errors"
)

// articleCommand creates the article command.
func (c *CLI) articleCommand() *cobra.Command {
	var (
		format  string
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "article <title>",
		Short: "Fetch an article and print its embeddable markup",
		Long: `Fetch an article from the configured Wikipedia edition and print the
transformed body markup. With --format markdown the markup is converted to
Markdown.`,
		Example: `  wikireader article "Albert Einstein"
  wikireader article AC/DC --format markdown -o acdc.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "html", "markdown", "md":
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want html or markdown)", format)
			}

			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			fetch := a.articles.Fetch
			if format == "markdown" || format == "md" {
				fetch = a.articles.Markdown
			}

			prog := newProgress(c.Logger)
			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Fetching %s...", args[0]))
			spinner.Start()
			body, err := fetch(cmd.Context(), args[0], refresh)
			if err != nil {
				spinner.StopWithError(errors.UserMessage(err))
				return err
			}
			spinner.Stop()
			prog.done(fmt.Sprintf("Fetched %s", args[0]))

			return c.writeOutput(output, []byte(body))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")

	return cmd
}
