package cli

import (
	"github.com/spf13/cobra"
)

func newCmdIndexes(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "List the index types the API can calculate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}

			indexes, err := client.GetIndexTypes(cmd.Context())
			if err != nil {
				return err
			}

			return opts.printJSON(indexes)
		},
	}
}

func newCmdMeasurementTypes(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "measurement-types",
		Short: "List the measurement types the API can report",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}

			types, err := client.GetMeasurementTypes(cmd.Context())
			if err != nil {
				return err
			}

			return opts.printJSON(types)
		},
	}
}
