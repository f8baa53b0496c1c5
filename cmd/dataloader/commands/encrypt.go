package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <path>",
		Short: "Seal a file into a vault envelope with the configured password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, _ := cmd.Flags().GetString("label")
			dest, _ := cmd.Flags().GetString("output")

			sealed, err := c.app.Encrypt(cmd.Context(), args[0], label)
			if err != nil {
				return err
			}

			if dest == "" || dest == "-" {
				_, err := cmd.OutOrStdout().Write(sealed)
				return err
			}
			if err := os.WriteFile(dest, sealed, domain.PrivateFilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write vault file"), "path", dest)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", dest)
			return nil
		},
	}
	cmd.Flags().StringP("label", "l", "", "Vault id label; selects the 1.2 envelope")
	cmd.Flags().StringP("output", "o", "-", "Destination file, or - for stdout")
	return cmd
}
