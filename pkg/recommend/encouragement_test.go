package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/waypace/waypace/pkg/cdm"
)

func TestGetEncouragement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/encouragement" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"message": "You crushed that walk to Siebel!"}`))
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	message := client.GetEncouragement(context.Background(), cdm.WalkingModeWalk, 850, 42.5, "Siebel", 1100)
	if message != "You crushed that walk to Siebel!" {
		t.Errorf("unexpected message: %q", message)
	}
}

func TestGetEncouragementFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	message := client.GetEncouragement(context.Background(), cdm.WalkingModeWalk, 850, 42.5, "Siebel Center", 1100)
	if message != "Great job walking to Siebel Center!" {
		t.Errorf("expected canned fallback, got %q", message)
	}
}

func TestGetEncouragementEmptyMessageFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": ""}`))
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	message := client.GetEncouragement(context.Background(), cdm.WalkingModeBrisk, 850, 42.5, "Grainger", 0)
	if message != "Great job walking to Grainger!" {
		t.Errorf("expected canned fallback, got %q", message)
	}
}
