// File: /services/routing.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const mapboxBaseURL = "https://api.mapbox.com"

// RouteRefiner looks up routed driving distance and duration from the
// Mapbox directions API. Callers treat every error as "keep the estimate".
type RouteRefiner struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewRouteRefiner(token string) *RouteRefiner {
	return &RouteRefiner{
		token:   token,
		baseURL: mapboxBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Enabled reports whether a routing token is configured
func (r *RouteRefiner) Enabled() bool {
	return r != nil && r.token != ""
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
	Code string `json:"code"`
}

// Route returns the routed driving distance in km and duration in minutes
// between two points.
func (r *RouteRefiner) Route(ctx context.Context, from, to GeoPoint) (float64, int, error) {
	if !r.Enabled() {
		return 0, 0, fmt.Errorf("routing is not configured")
	}

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f",
		r.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	query := url.Values{}
	query.Set("access_token", r.token)
	query.Set("overview", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("directions API returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	km := math.Round(body.Routes[0].Distance/100) / 10
	minutes := int(math.Round(body.Routes[0].Duration / 60))
	if minutes < 1 {
		minutes = 1
	}

	return km, minutes, nil
}
