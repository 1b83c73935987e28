package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wikireader/pkg/edition"
	"github.com/matzehuels/wikireader/pkg/errors"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// editionCommand creates the edition command.
func (c *CLI) editionCommand() *cobra.Command {
	var (
		format string
		output string
		month  int
		year   int
	)

	cmd := &cobra.Command{
		Use:   "edition",
		Short: "Assemble the monthly edition",
		Long: `Assemble the newsletter edition for the month before the current one,
or for --month/--year. Sources that fail are left empty and logged.`,
		Example: `  wikireader edition
  wikireader edition --month 12 --year 2025 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want json or yaml)", format)
			}
			if month != 0 && (month < 1 || month > 12) {
				return errors.New(errors.ErrCodeInvalidInput, "--month must be between 1 and 12")
			}

			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			m, y := wiki.NextEditionMonth(a.editions.Now())
			if month != 0 {
				m = month - 1
			}
			if year != 0 {
				y = year
			}

			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Assembling %s %d edition...", wiki.ReadableMonth(m), y))
			spinner.Start()
			ed := a.editions.BuildFor(cmd.Context(), m, y)
			if err := cmd.Context().Err(); err != nil {
				spinner.Stop()
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Assembled %s %d edition", ed.MonthName, ed.Year))

			data, err := encodeEdition(ed, format)
			if err != nil {
				return err
			}
			return c.writeOutput(output, data)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().IntVar(&month, "month", 0, "edition month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "edition year")

	return cmd
}

func encodeEdition(ed *edition.Edition, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(ed)
	}
	data, err := json.MarshalIndent(ed, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
