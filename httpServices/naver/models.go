package httpServices

// Coord is a WGS84 coordinate pair. Naver uses longitude,latitude ordering.
type Coord struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

type geocodeResponse struct {
	Status    string           `json:"status"`
	Addresses []geocodeAddress `json:"addresses"`
}

type geocodeAddress struct {
	X string `json:"x"` // longitude
	Y string `json:"y"` // latitude
}

type directionsResponse struct {
	Route directionsRoute `json:"route"`
}

type directionsRoute struct {
	Trafast    []routeOption `json:"trafast"`
	Traoptimal []routeOption `json:"traoptimal"`
	Tracomfort []routeOption `json:"tracomfort"`
}

type routeOption struct {
	Summary routeSummary `json:"summary"`
}

type routeSummary struct {
	Distance float64 `json:"distance"` // meters
	Duration float64 `json:"duration"` // milliseconds
}

// RouteResult is the normalized driving route summary.
type RouteResult struct {
	DistanceKm      float64
	DurationMinutes float64
}
