package transitdetail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetLegDetail(t *testing.T) {
	at := time.Date(2024, 3, 6, 14, 5, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route-detail" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		query := r.URL.Query()
		if query.Get("route") != "22" || query.Get("boarding_stop_id") != "IU:1" || query.Get("alighting_stop_id") != "TB:2" {
			t.Errorf("query wrong: %v", query)
		}
		if query.Get("at") != "2024-03-06T14:05:00Z" {
			t.Errorf("at parameter wrong: %s", query.Get("at"))
		}

		w.Write([]byte(`{
			"route": "22",
			"headsign": "Illini North",
			"stops": [
				{"stop_id": "IU:1", "name": "Illini Union"},
				{"stop_id": "GR:4", "name": "Grainger"},
				{"stop_id": "TB:2", "name": "Transit Plaza"}
			],
			"shape": "_p~iF~ps|U"
		}`))
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	legDetail, err := client.GetLegDetail(context.Background(), "22", "IU:1", "TB:2", at)
	if err != nil {
		t.Fatal(err)
	}

	if legDetail.RouteID != "22" || legDetail.Headsign != "Illini North" {
		t.Errorf("leg detail wrong: %+v", legDetail)
	}
	if len(legDetail.Stops) != 3 || legDetail.Stops[1].Name != "Grainger" {
		t.Errorf("stop sequence wrong: %+v", legDetail.Stops)
	}
	if legDetail.Shape == "" {
		t.Error("shape missing")
	}
}

func TestGetLegDetailUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := &Client{Endpoint: server.URL, httpClient: server.Client()}

	if _, err := client.GetLegDetail(context.Background(), "22", "IU:1", "TB:2", time.Now()); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}
