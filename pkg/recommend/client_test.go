package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waypace/waypace/pkg/cdm"
)

const busRecommendationBody = `{
	"options": [
		{
			"type": "BUS",
			"summary": "22 Illini towards North",
			"eta_minutes": 14,
			"depart_in_minutes": 12,
			"steps": [
				{"type": "WALK_TO_STOP", "duration_minutes": 4, "stop_id": "IU:1", "stop_name": "Illini Union", "stop_lat": 40.1092, "stop_lng": -88.2272},
				{"type": "WAIT", "duration_minutes": 2, "stop_id": "IU:1"},
				{"type": "RIDE", "duration_minutes": 6, "route": "22", "stop_id": "IU:1", "alighting_stop_id": "TB:2", "alighting_stop_lat": 40.1103, "alighting_stop_lng": -88.2285},
				{"type": "WALK_TO_DEST", "duration_minutes": 2, "building_id": "siebel", "building_lat": 40.1138, "building_lng": -88.2249}
			]
		},
		{
			"type": "WALK",
			"summary": "Walk 25 min",
			"eta_minutes": 25,
			"depart_in_minutes": 3,
			"steps": [
				{"type": "WALK_TO_DEST", "duration_minutes": 25, "building_id": "siebel", "building_lat": 40.1138, "building_lng": -88.2249}
			]
		}
	]
}`

func TestGetRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/recommendation" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("api key header missing")
		}

		var request RecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("request body did not decode: %v", err)
		}
		if request.DestinationBuildingID != "siebel" {
			t.Errorf("request body wrong: %+v", request)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(busRecommendationBody))
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, APIKey: "test-key", httpClient: server.Client()}

	options, err := client.GetRecommendations(context.Background(), RecommendationRequest{
		Lat: 40.1092, Lng: -88.2272,
		DestinationBuildingID: "siebel",
		ArriveByISO:           "2024-03-06T14:30:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(options) != 2 {
		t.Fatalf("expected two options, got %d", len(options))
	}

	bus := options[0]
	if bus.Kind != cdm.RouteOptionKindTransit {
		t.Errorf("BUS should map to the transit kind, got %s", bus.Kind)
	}
	if bus.DepartInMinutes != 12 {
		t.Errorf("depart offset wrong: %v", bus.DepartInMinutes)
	}

	ride := bus.RideStep()
	if ride == nil || ride.RouteID != "22" || ride.AlightingStopID != "TB:2" {
		t.Fatalf("ride step wrong: %+v", ride)
	}
	if !ride.AlightingStopLocation.Valid() || ride.AlightingStopLocation.Latitude() != 40.1103 {
		t.Errorf("alighting coordinates wrong: %+v", ride.AlightingStopLocation)
	}

	walk := options[1]
	if walk.Kind != cdm.RouteOptionKindWalk {
		t.Errorf("WALK should map to the walk kind, got %s", walk.Kind)
	}
	if destination := walk.DestinationStep(); destination == nil || !destination.DestinationLocation.Valid() {
		t.Error("walk destination coordinates missing")
	}
}

func TestGetRecommendationsDropsInvalidOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The BUS option has no ride leg and must be filtered out
		w.Write([]byte(`{"options": [
			{"type": "BUS", "summary": "broken", "steps": [{"type": "WALK_TO_STOP", "stop_id": "IU:1"}]},
			{"type": "WALK", "summary": "Walk 25 min", "steps": [{"type": "WALK_TO_DEST", "building_id": "siebel"}]}
		]}`))
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	options, err := client.GetRecommendations(context.Background(), RecommendationRequest{})
	if err != nil {
		t.Fatal(err)
	}

	if len(options) != 1 || options[0].Kind != cdm.RouteOptionKindWalk {
		t.Errorf("invalid options should be dropped: %+v", options)
	}
}

func TestGetRecommendationsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	if _, err := client.GetRecommendations(context.Background(), RecommendationRequest{}); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}
