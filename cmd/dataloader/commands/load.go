package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dataloader/internal/core/domain"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <path|->",
		Short: "Load a JSON or YAML document, decrypting it if needed, and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			var (
				doc *domain.Document
				err error
			)
			if args[0] == "-" {
				doc, err = c.app.LoadReader(cmd.Context(), cmd.InOrStdin(), domain.StdinSourceName)
			} else {
				doc, err = c.app.Load(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return c.app.Render(cmd.OutOrStdout(), doc, format)
		},
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: json or yaml")
	return cmd
}
