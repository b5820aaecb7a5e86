package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCmdInstallation(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "installation <id>",
		Short: "Show a single installation by its identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing installation id %q: %w", args[0], err)
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}

			installation, err := client.GetInstallation(cmd.Context(), id)
			if err != nil {
				return err
			}

			return opts.printJSON(installation)
		},
	}
}
