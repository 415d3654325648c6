package transitdetail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/util"
)

const defaultEndpoint = "http://localhost:8000"
const requestTimeout = 5 * time.Second

// Client fetches the ordered stop list and shape for the ride portion of a
// transit option. Only consulted while the user is on the bus, and only as an
// enhancement - callers tolerate failure.
type Client struct {
	Endpoint string
	APIKey   string

	httpClient *http.Client
}

func NewClient() *Client {
	endpoint := defaultEndpoint

	env := util.GetEnvironmentVariables()
	if env["WAYPACE_TRANSIT_DETAIL_ENDPOINT"] != "" {
		endpoint = env["WAYPACE_TRANSIT_DETAIL_ENDPOINT"]
	}

	return &Client{
		Endpoint: endpoint,
		APIKey:   env["WAYPACE_RECOMMENDER_API_KEY"],

		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) GetLegDetail(ctx context.Context, routeID string, boardingStopID string, alightingStopID string, at time.Time) (*cdm.TransitLegDetail, error) {
	query := url.Values{}
	query.Set("route", routeID)
	query.Set("boarding_stop_id", boardingStopID)
	query.Set("alighting_stop_id", alightingStopID)
	query.Set("at", at.Format(time.RFC3339))

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/route-detail?%s", c.Endpoint, query.Encode()), nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		httpRequest.Header.Set("X-API-Key", c.APIKey)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("route detail request failed with status %d", httpResponse.StatusCode)
	}

	var legDetail cdm.TransitLegDetail
	if err := json.NewDecoder(httpResponse.Body).Decode(&legDetail); err != nil {
		return nil, err
	}

	return &legDetail, nil
}
