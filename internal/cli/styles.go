package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikireader/pkg/config"
	"github.com/matzehuels/wikireader/pkg/integrations/wikipedia"
)

// stylesCommand prints the stylesheet bundle URL for the configured skin.
func (c *CLI) stylesCommand() *cobra.Command {
	var skin string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the stylesheet bundle URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if skin != "" {
				cfg.Skin = config.Skin(skin)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			fmt.Fprintln(c.out, wikipedia.StylesURL(cfg.Lang, cfg.Skin))
			return nil
		},
	}

	cmd.Flags().StringVar(&skin, "skin", "", "override the skin: desktop or mobile")

	return cmd
}
