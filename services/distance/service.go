package distance

import (
	"sync"

	httpServices "dispatch-backend/httpServices/naver"
	distanceTypes "dispatch-backend/types/distance"
)

// Dummy values returned while the map integration is disabled.
const (
	DummyDistanceKm      = 10
	DummyDurationMinutes = 20
)

// Geocoder is the subset of the maps client the estimator needs.
type Geocoder interface {
	Geocode(address string) (httpServices.Coord, error)
	Driving(start, goal httpServices.Coord) (httpServices.RouteResult, error)
}

// Estimator resolves an address pair to a driving distance and duration.
type Estimator struct {
	maps    Geocoder
	enabled bool
}

func NewEstimator(maps Geocoder, enabled bool) *Estimator {
	return &Estimator{maps: maps, enabled: enabled}
}

// Estimate geocodes both addresses, then requests a driving route. The two
// geocode calls are independent and run concurrently; the route call needs
// both results. With the integration disabled it returns the fixed dummy pair.
func (e *Estimator) Estimate(startAddress, goalAddress string) (distanceTypes.EstimateResponse, error) {
	if !e.enabled {
		return distanceTypes.EstimateResponse{
			DistanceKm:      DummyDistanceKm,
			DurationMinutes: DummyDurationMinutes,
			Mode:            "dummy",
		}, nil
	}

	var (
		wg                sync.WaitGroup
		start, goal       httpServices.Coord
		startErr, goalErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		start, startErr = e.maps.Geocode(startAddress)
	}()
	go func() {
		defer wg.Done()
		goal, goalErr = e.maps.Geocode(goalAddress)
	}()
	wg.Wait()

	if startErr != nil {
		return distanceTypes.EstimateResponse{}, startErr
	}
	if goalErr != nil {
		return distanceTypes.EstimateResponse{}, goalErr
	}

	route, err := e.maps.Driving(start, goal)
	if err != nil {
		return distanceTypes.EstimateResponse{}, err
	}

	return distanceTypes.EstimateResponse{
		DistanceKm:      route.DistanceKm,
		DurationMinutes: route.DurationMinutes,
		Mode:            "naver",
	}, nil
}
