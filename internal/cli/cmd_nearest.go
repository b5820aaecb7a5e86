package cli

import (
	"github.com/spf13/cobra"

	airly "github.com/bartOssh/airly-go"
)

var (
	nearestLat           float64
	nearestLng           float64
	nearestMaxDistanceKM int
	nearestMaxResults    int
)

func newCmdNearest(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "List installations closest to a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := airly.NewGeoPoint(nearestLat, nearestLng)
			if err != nil {
				return err
			}
			circle, err := airly.NewGeoCircle(point, nearestMaxDistanceKM)
			if err != nil {
				return err
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}

			installations, err := client.GetNearestInstallations(cmd.Context(), circle, nearestMaxResults)
			if err != nil {
				return err
			}

			return opts.printJSON(installations)
		},
	}

	cmd.Flags().Float64Var(&nearestLat, "lat", 0, "Latitude of the search point")
	cmd.Flags().Float64Var(&nearestLng, "lng", 0, "Longitude of the search point")
	cmd.Flags().IntVar(&nearestMaxDistanceKM, "max-distance-km", 5, "Search radius in kilometres")
	cmd.Flags().IntVar(&nearestMaxResults, "max-results", 3, "Maximum number of installations to return")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}
