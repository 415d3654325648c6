package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/util"
)

const defaultEndpoint = "http://localhost:8000"
const requestTimeout = 10 * time.Second

// Client talks to the route recommendation service. All calls are best
// effort for the callers here - a failed fetch degrades to last known data.
type Client struct {
	Endpoint string
	APIKey   string

	httpClient *http.Client
}

func NewClient() *Client {
	endpoint := defaultEndpoint

	env := util.GetEnvironmentVariables()
	if env["WAYPACE_RECOMMENDER_ENDPOINT"] != "" {
		endpoint = env["WAYPACE_RECOMMENDER_ENDPOINT"]
	}

	return &Client{
		Endpoint: endpoint,
		APIKey:   env["WAYPACE_RECOMMENDER_API_KEY"],

		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type RecommendationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	DestinationBuildingID string   `json:"destination_building_id,omitempty"`
	DestinationLat        *float64 `json:"destination_lat,omitempty"`
	DestinationLng        *float64 `json:"destination_lng,omitempty"`
	DestinationName       string   `json:"destination_name,omitempty"`

	ArriveByISO string `json:"arrive_by_iso"`

	WalkingSpeedMps float64 `json:"walking_speed_mps,omitempty"`
	BufferMinutes   float64 `json:"buffer_minutes,omitempty"`
	MaxOptions      int     `json:"max_options,omitempty"`
}

func (c *Client) GetRecommendations(ctx context.Context, request RecommendationRequest) ([]cdm.RouteOption, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/recommendation", c.Endpoint), bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpRequest.Header.Set("X-API-Key", c.APIKey)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendation request failed with status %d", httpResponse.StatusCode)
	}

	var response recommendationResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&response); err != nil {
		return nil, err
	}

	routeOptions := make([]cdm.RouteOption, 0, len(response.Options))
	for _, wireOption := range response.Options {
		routeOption := wireOption.toRouteOption()

		if err := routeOption.Validate(); err != nil {
			continue
		}

		routeOptions = append(routeOptions, routeOption)
	}

	return routeOptions, nil
}
