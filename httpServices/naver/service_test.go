package httpServices

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(geocodeURL, directionsURL string) *MapsClient {
	return NewMapsClient(&config.Config{
		Naver: config.Naver{
			ClientID:      "test-id",
			ClientSecret:  "test-secret",
			GeocodeURL:    geocodeURL,
			DirectionsURL: directionsURL,
		},
	})
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-id", r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
		assert.Equal(t, "test-secret", r.Header.Get("X-NCP-APIGW-API-KEY"))
		assert.Equal(t, "123 Gangnam-daero", r.URL.Query().Get("query"))
		w.Write([]byte(`{"status":"OK","addresses":[{"x":"127.027619","y":"37.497942"}]}`))
	}))
	defer server.Close()

	coord, err := testClient(server.URL, "").Geocode("123 Gangnam-daero")
	require.NoError(t, err)
	assert.InDelta(t, 127.027619, coord.Lng, 1e-9)
	assert.InDelta(t, 37.497942, coord.Lat, 1e-9)
}

func TestGeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","addresses":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL, "").Geocode("nowhere at all")
	assert.Error(t, err)
}

func TestGeocodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"ERROR"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL, "").Geocode("123 Gangnam-daero")
	assert.Error(t, err)
}

func TestGeocodeWithoutCredentials(t *testing.T) {
	client := NewMapsClient(&config.Config{})
	_, err := client.Geocode("123 Gangnam-daero")
	assert.Error(t, err)
}

func TestDrivingConvertsUnits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trafast", r.URL.Query().Get("option"))
		// 382512 m, 15600000 ms
		w.Write([]byte(`{"route":{"trafast":[{"summary":{"distance":382512,"duration":15600000}}]}}`))
	}))
	defer server.Close()

	result, err := testClient("", server.URL).Driving(Coord{Lng: 126.97, Lat: 37.56}, Coord{Lng: 129.07, Lat: 35.17})
	require.NoError(t, err)
	assert.Equal(t, 382.5, result.DistanceKm)
	assert.Equal(t, 260.0, result.DurationMinutes)
}

func TestDrivingFallsBackToTraoptimal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"route":{"traoptimal":[{"summary":{"distance":10000,"duration":1200000}}]}}`))
	}))
	defer server.Close()

	result, err := testClient("", server.URL).Driving(Coord{}, Coord{})
	require.NoError(t, err)
	assert.Equal(t, 10.0, result.DistanceKm)
	assert.Equal(t, 20.0, result.DurationMinutes)
}

func TestDrivingMissingSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"route":{}}`))
	}))
	defer server.Close()

	_, err := testClient("", server.URL).Driving(Coord{}, Coord{})
	assert.Error(t, err)
}
