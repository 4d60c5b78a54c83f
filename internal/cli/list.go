package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fixtura/internal/demo"
	"github.com/roach88/fixtura/internal/harness"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Filter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the node IDs of the demonstration tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := harness.Collect(demo.Suites(demo.Files), opts.Filter)
			if err != nil {
				return WrapExitError(ExitCommandError, "list", err)
			}

			formatter := &OutputFormatter{
				Format:  opts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: opts.Verbose,
			}
			if formatter.Format == "json" {
				if ids == nil {
					ids = []string{}
				}
				return formatter.JSON(CLIResponse{Status: "ok", Data: ids})
			}

			var buf strings.Builder
			for _, id := range ids {
				fmt.Fprintln(&buf, id)
			}
			if opts.Verbose {
				fmt.Fprintf(&buf, "\n%d tests collected\n", len(ids))
			}
			_, err = fmt.Fprint(formatter.Writer, buf.String())
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "glob over node IDs (module::test)")

	return cmd
}
