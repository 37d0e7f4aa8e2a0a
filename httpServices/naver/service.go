package httpServices

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch-backend/config"
)

// MapsClient talks to the Naver Cloud map APIs: geocoding and driving
// directions. Credentials travel in the two X-NCP-APIGW headers.
type MapsClient struct {
	httpClient    *http.Client
	geocodeURL    string
	directionsURL string
	clientID      string
	clientSecret  string
}

func NewMapsClient(cfg *config.Config) *MapsClient {
	return &MapsClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		geocodeURL:    cfg.Naver.GeocodeURL,
		directionsURL: cfg.Naver.DirectionsURL,
		clientID:      cfg.Naver.ClientID,
		clientSecret:  cfg.Naver.ClientSecret,
	}
}

// Geocode resolves an address string to a coordinate pair.
func (c *MapsClient) Geocode(address string) (Coord, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return Coord{}, errors.New("naver map API credentials are not configured")
	}

	params := url.Values{}
	params.Set("query", address)

	req, err := http.NewRequest("GET", c.geocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		return Coord{}, err
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coord{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coord{}, err
	}

	var geocoded geocodeResponse
	if err := json.Unmarshal(body, &geocoded); err != nil {
		return Coord{}, fmt.Errorf("failed to parse geocode response: %s", string(body))
	}

	if resp.StatusCode != http.StatusOK || geocoded.Status != "OK" || len(geocoded.Addresses) == 0 {
		return Coord{}, fmt.Errorf("geocoding failed for %q (status %d): %s", address, resp.StatusCode, string(body))
	}

	addr := geocoded.Addresses[0]
	lng, err := strconv.ParseFloat(addr.X, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("geocode response has a non-numeric longitude: %s", addr.X)
	}
	lat, err := strconv.ParseFloat(addr.Y, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("geocode response has a non-numeric latitude: %s", addr.Y)
	}

	return Coord{Lng: lng, Lat: lat}, nil
}

// Driving requests a fastest-driving route between two coordinates and
// normalizes the first available route summary: meters to km (one decimal),
// milliseconds to minutes.
func (c *MapsClient) Driving(start, goal Coord) (RouteResult, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return RouteResult{}, errors.New("naver map API credentials are not configured")
	}

	params := url.Values{}
	params.Set("start", fmt.Sprintf("%f,%f", start.Lng, start.Lat))
	params.Set("goal", fmt.Sprintf("%f,%f", goal.Lng, goal.Lat))
	params.Set("option", "trafast")

	req, err := http.NewRequest("GET", c.directionsURL+"?"+params.Encode(), nil)
	if err != nil {
		return RouteResult{}, err
	}
	c.setAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RouteResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RouteResult{}, err
	}

	var directions directionsResponse
	if err := json.Unmarshal(body, &directions); err != nil {
		return RouteResult{}, fmt.Errorf("failed to parse directions response: %s", string(body))
	}

	option := firstRouteOption(directions.Route)
	if resp.StatusCode != http.StatusOK || option == nil {
		return RouteResult{}, fmt.Errorf("route lookup failed (status %d): %s", resp.StatusCode, string(body))
	}

	return RouteResult{
		DistanceKm:      math.Round(option.Summary.Distance/1000*10) / 10,
		DurationMinutes: option.Summary.Duration / 60000,
	}, nil
}

func (c *MapsClient) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.clientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.clientSecret)
}

func firstRouteOption(route directionsRoute) *routeOption {
	if len(route.Trafast) > 0 {
		return &route.Trafast[0]
	}
	if len(route.Traoptimal) > 0 {
		return &route.Traoptimal[0]
	}
	if len(route.Tracomfort) > 0 {
		return &route.Tracomfort[0]
	}
	return nil
}
