package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/ui/output"
	"go.trai.ch/dataloader/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the absolute path a user-given path resolves to",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.Resolve(cmd.Context(), args[0]))
		},
	}
}

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <base-path> <subdir> <source>",
		Short: "Locate a file referenced from a role or playbook directory",
		Long: "Searches the role and playbook layouts around base-path for source.\n" +
			"The first existing candidate is printed. When none exists the last candidate\n" +
			"is printed and the command fails.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			showAll, _ := cmd.Flags().GetBool("candidates")
			res := c.app.Find(cmd.Context(), args[0], args[1], args[2])

			out := cmd.OutOrStdout()
			if !showAll {
				_, _ = fmt.Fprintln(out, res.Path)
				return res.Err()
			}

			s := style.New(output.NewRenderer(out))
			chosen := res.Found
			for _, candidate := range res.Candidates {
				if chosen && candidate == res.Path {
					_, _ = fmt.Fprintf(out, "%s %s\n", s.Found.Render(style.Arrow), candidate)
					chosen = false
					continue
				}
				_, _ = fmt.Fprintf(out, "  %s\n", s.Muted.Render(candidate))
			}
			return res.Err()
		},
	}
	cmd.Flags().BoolP("candidates", "c", false, "Print every candidate in search order and mark the match")
	return cmd
}

func (c *CLI) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a path exists and what it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := c.app.Exists(cmd.Context(), args[0])

			out := cmd.OutOrStdout()
			s := style.New(output.NewRenderer(out))

			kind := "missing"
			switch {
			case info.IsFile:
				kind = "file"
			case info.IsDir:
				kind = "directory"
			case info.Exists:
				kind = "other"
			}
			_, _ = fmt.Fprintf(out, "%s %s %s\n", s.Mark(info.Exists), info.Path, s.Muted.Render("("+kind+")"))

			if !info.Exists {
				return zerr.With(fmt.Errorf("%w", domain.ErrFileNotFound), "path", info.Path)
			}
			return nil
		},
	}
}

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <path>",
		Short: "List a directory relative to the base directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.app.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
