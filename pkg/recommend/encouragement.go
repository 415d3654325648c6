package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
)

const encouragementTimeout = 5 * time.Second

type encouragementRequest struct {
	Mode       string  `json:"mode"`
	DistanceM  float64 `json:"distance_m"`
	Calories   float64 `json:"calories"`
	DestName   string  `json:"dest_name"`
	StepsTaken int64   `json:"steps_taken,omitempty"`
}

type encouragementResponse struct {
	Message string `json:"message"`
}

// GetEncouragement asks the backend for a short completion message. Any
// failure falls back to a canned message so arrival is never blocked on it.
func (c *Client) GetEncouragement(ctx context.Context, mode cdm.WalkingMode, distanceMeters float64, calories float64, destinationName string, steps int64) string {
	fallback := fmt.Sprintf("Great job walking to %s!", destinationName)

	ctx, cancel := context.WithTimeout(ctx, encouragementTimeout)
	defer cancel()

	requestBody, err := json.Marshal(encouragementRequest{
		Mode:       string(mode),
		DistanceM:  distanceMeters,
		Calories:   calories,
		DestName:   destinationName,
		StepsTaken: steps,
	})
	if err != nil {
		return fallback
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/encouragement", c.Endpoint), bytes.NewReader(requestBody))
	if err != nil {
		return fallback
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpRequest.Header.Set("X-API-Key", c.APIKey)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		log.Debug().Err(err).Msg("Encouragement fetch failed")
		return fallback
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return fallback
	}

	var response encouragementResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&response); err != nil || response.Message == "" {
		return fallback
	}

	return response.Message
}
