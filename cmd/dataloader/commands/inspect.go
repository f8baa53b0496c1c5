package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/dataloader/internal/ui/output"
	"go.trai.ch/dataloader/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Load a document and summarize its shape and content digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			label := style.New(output.NewRenderer(out)).Label.Width(9)
			row := func(name, value string) {
				_, _ = fmt.Fprintf(out, "%s %s\n", label.Render(name), value)
			}

			row("path", in.Path)
			row("digest", fmt.Sprintf("%016x", in.Digest))
			row("kind", in.Kind.String())
			row("entries", strconv.Itoa(in.Len))
			if len(in.Keys) > 0 {
				row("keys", strings.Join(in.Keys, ", "))
			}
			if in.Position != nil {
				row("position", in.Position.String())
			}
			return nil
		},
	}
}
