package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Suggest article titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			results, err := a.wikipedia.Search(cmd.Context(), query, limit)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			if len(results) == 0 {
				printInfo("No results for %s", StyleHighlight.Render(query))
				return nil
			}
			for _, r := range results {
				line := StyleValue.Render(r.Title)
				if r.Description != "" {
					line += " " + StyleDim.Render(r.Description)
				}
				fmt.Fprintln(c.out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of results")

	return cmd
}
