package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	airly "github.com/bartOssh/airly-go"
)

var (
	measurementIndex         string
	measurementWind          bool
	measurementLat           float64
	measurementLng           float64
	measurementMaxDistanceKM int
)

func newCmdMeasurements(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measurements",
		Short: "Fetch air quality measurements",
	}

	cmd.PersistentFlags().StringVar(&measurementIndex, "index", airly.IndexAirlyCAQI, "Index type to calculate (AIRLY_CAQI, CAQI or PIJP)")

	cmd.AddCommand(newCmdMeasurementsInstallation(opts))
	cmd.AddCommand(newCmdMeasurementsNearest(opts))
	cmd.AddCommand(newCmdMeasurementsPoint(opts))

	return cmd
}

func newCmdMeasurementsInstallation(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installation <id>",
		Short: "Measurements for a single installation",
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

			measurements, err := client.GetInstallationMeasurements(cmd.Context(),
				id, airly.NewIndexType(measurementIndex), measurementWind)
			if err != nil {
				return err
			}

			return opts.printJSON(measurements)
		},
	}

	cmd.Flags().BoolVar(&measurementWind, "wind", false, "Include wind speed and bearing readings")

	return cmd
}

func newCmdMeasurementsNearest(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Measurements from the installation closest to a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := airly.NewGeoPoint(measurementLat, measurementLng)
			if err != nil {
				return err
			}
			circle, err := airly.NewGeoCircle(point, measurementMaxDistanceKM)
			if err != nil {
				return err
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}

			measurements, err := client.GetNearestMeasurements(cmd.Context(),
				airly.NewIndexType(measurementIndex), circle)
			if err != nil {
				return err
			}

			return opts.printJSON(measurements)
		},
	}

	addPointFlags(cmd)
	cmd.Flags().IntVar(&measurementMaxDistanceKM, "max-distance-km", 5, "Search radius in kilometres")

	return cmd
}

func newCmdMeasurementsPoint(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Measurements interpolated for an arbitrary point",
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := airly.NewGeoPoint(measurementLat, measurementLng)
			if err != nil {
				return err
			}

			client, err := opts.newClient()
			if err != nil {
				return err
			}

			measurements, err := client.GetPointMeasurements(cmd.Context(),
				airly.NewIndexType(measurementIndex), point)
			if err != nil {
				return err
			}

			return opts.printJSON(measurements)
		},
	}

	addPointFlags(cmd)

	return cmd
}

func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&measurementLat, "lat", 0, "Latitude of the point")
	cmd.Flags().Float64Var(&measurementLng, "lng", 0, "Longitude of the point")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
}
