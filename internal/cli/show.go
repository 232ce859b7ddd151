package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchmax/matio"
)

// newShowCmd builds the "show" subcommand: load a matrix file and echo it
// as an aligned grid, without solving anything. Useful for checking that a
// file parses the way the solver will see it.
func newShowCmd() *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Load a matrix file and print it as an aligned grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := matio.ReadFile(args[0], matio.WithDelimiter(delimiter))
			if err != nil {
				return err
			}
			logger.Debug("matrix loaded", "path", args[0], "width", m.Width(), "height", m.Height())

			return matio.Fprint(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", matio.DefaultDelimiter, "value separator in the matrix file")

	return cmd
}
