package distance

import (
	"errors"
	"testing"

	httpServices "dispatch-backend/httpServices/naver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMaps struct {
	coords     map[string]httpServices.Coord
	geocodeErr map[string]error
	route      httpServices.RouteResult
	routeErr   error
	routeCalls int
}

func (f *fakeMaps) Geocode(address string) (httpServices.Coord, error) {
	if err := f.geocodeErr[address]; err != nil {
		return httpServices.Coord{}, err
	}
	return f.coords[address], nil
}

func (f *fakeMaps) Driving(start, goal httpServices.Coord) (httpServices.RouteResult, error) {
	f.routeCalls++
	if f.routeErr != nil {
		return httpServices.RouteResult{}, f.routeErr
	}
	return f.route, nil
}

func TestEstimateDisabledReturnsDummy(t *testing.T) {
	estimator := NewEstimator(&fakeMaps{}, false)

	for _, pair := range [][2]string{
		{"Seoul", "Busan"},
		{"anywhere", "somewhere else"},
	} {
		result, err := estimator.Estimate(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, float64(DummyDistanceKm), result.DistanceKm)
		assert.Equal(t, float64(DummyDurationMinutes), result.DurationMinutes)
		assert.Equal(t, "dummy", result.Mode)
	}
}

func TestEstimateEnabled(t *testing.T) {
	maps := &fakeMaps{
		coords: map[string]httpServices.Coord{
			"Seoul": {Lng: 126.97, Lat: 37.56},
			"Busan": {Lng: 129.07, Lat: 35.17},
		},
		route: httpServices.RouteResult{DistanceKm: 382.5, DurationMinutes: 260},
	}
	estimator := NewEstimator(maps, true)

	result, err := estimator.Estimate("Seoul", "Busan")
	require.NoError(t, err)
	assert.Equal(t, 382.5, result.DistanceKm)
	assert.Equal(t, 260.0, result.DurationMinutes)
	assert.Equal(t, "naver", result.Mode)
	assert.Equal(t, 1, maps.routeCalls)
}

func TestEstimateGeocodeFailureSkipsRoute(t *testing.T) {
	maps := &fakeMaps{
		coords:     map[string]httpServices.Coord{"Seoul": {Lng: 126.97, Lat: 37.56}},
		geocodeErr: map[string]error{"Nowhere": errors.New("no match for address")},
	}
	estimator := NewEstimator(maps, true)

	_, err := estimator.Estimate("Seoul", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no match")
	assert.Equal(t, 0, maps.routeCalls)
}

func TestEstimateRouteFailure(t *testing.T) {
	maps := &fakeMaps{
		coords: map[string]httpServices.Coord{
			"Seoul": {Lng: 126.97, Lat: 37.56},
			"Busan": {Lng: 129.07, Lat: 35.17},
		},
		routeErr: errors.New("route lookup failed"),
	}
	estimator := NewEstimator(maps, true)

	_, err := estimator.Estimate("Seoul", "Busan")
	assert.Error(t, err)
}
