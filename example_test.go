package airly_test

import (
	"context"
	"fmt"
	"os"

	airly "github.com/bartOssh/airly-go"
)

func ExampleNewClient() {
	client, err := airly.NewClient(airly.ClientConfig{
		APIKey: os.Getenv("AIRLY_API_KEY"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	installation, err := client.GetInstallation(context.Background(), 34)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(installation.Address.City)
}

func ExampleClient_GetNearestMeasurements() {
	client, err := airly.NewClient(airly.ClientConfig{
		APIKey: os.Getenv("AIRLY_API_KEY"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	point, err := airly.NewGeoPoint(50.062006, 19.940984)
	if err != nil {
		fmt.Println(err)
		return
	}
	circle, err := airly.NewGeoCircle(point, 5)
	if err != nil {
		fmt.Println(err)
		return
	}

	measurements, err := client.GetNearestMeasurements(
		context.Background(), airly.NewIndexType(airly.IndexAirlyCAQI), circle)
	if err != nil {
		fmt.Println(err)
		return
	}

	if measurements.Current == nil {
		fmt.Println("no current measurements")
		return
	}
	for _, index := range measurements.Current.Indexes {
		if index.Name != nil && index.Value != nil {
			fmt.Printf("%s: %.2f\n", *index.Name, *index.Value)
		}
	}
}
