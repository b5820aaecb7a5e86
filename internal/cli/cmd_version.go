package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set at compile time via ldflags.
var Version = "dev"

func newCmdVersion(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, Version)
			return err
		},
	}
}
