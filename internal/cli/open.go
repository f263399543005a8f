package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/access"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <view>...",
		Short: "Show where the console would take you for a view path",
		Long: `Print the access decision for each view path, e.g.

  agrirent open / /admin/reports /customer/browse`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := gate.Current()
			for _, p := range args {
				d := access.Decide(sess, p)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s  %s\n", access.Clean(p), d)
			}
			return nil
		},
	}
}
