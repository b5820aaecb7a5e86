package airly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	airly "github.com/bartOssh/airly-go"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid point", lat: 54.347279, lng: 18.653846},
		{name: "northern boundary", lat: 90, lng: 0},
		{name: "southern boundary", lat: -90, lng: 0},
		{name: "eastern boundary", lat: 0, lng: 180},
		{name: "western boundary", lat: 0, lng: -180},
		{name: "null island", lat: 0, lng: 0},
		{name: "latitude above range", lat: 90.000001, lng: 0, wantErr: true},
		{name: "latitude below range", lat: -123.4, lng: 0, wantErr: true},
		{name: "longitude above range", lat: 0, lng: 180.000001, wantErr: true},
		{name: "longitude below range", lat: 0, lng: -200, wantErr: true},
		{name: "both out of range", lat: 91, lng: 181, wantErr: true},
		{name: "latitude not a number", lat: math.NaN(), lng: 0, wantErr: true},
		{name: "longitude infinite", lat: 0, lng: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := airly.NewGeoPoint(tt.lat, tt.lng)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, airly.ErrInvalidParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, point.Lat())
			assert.Equal(t, tt.lng, point.Lng())
		})
	}
}

func TestNewGeoCircle(t *testing.T) {
	point, err := airly.NewGeoPoint(54.347279, 18.653846)
	require.NoError(t, err)

	tests := []struct {
		name     string
		radiusKM int
		wantErr  bool
	}{
		{name: "small radius", radiusKM: 5},
		{name: "zero radius", radiusKM: 0},
		{name: "just inside earth radius", radiusKM: 6370},
		{name: "earth radius", radiusKM: 6371, wantErr: true},
		{name: "above earth radius", radiusKM: 40000, wantErr: true},
		{name: "negative radius", radiusKM: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circle, err := airly.NewGeoCircle(point, tt.radiusKM)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, airly.ErrInvalidParam)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, point, circle.Point())
			assert.Equal(t, tt.radiusKM, circle.RadiusKM())
		})
	}
}
