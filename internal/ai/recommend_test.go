package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	client := NewClient("test-key", "gpt-4o-mini", time.Second, nil)
	client.endpoint = upstream.URL
	return client
}

func TestRecommendParsesUpstreamAnswer(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("bad upstream body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": `{"toAdd": [1, 2], "toRemove": [9]}`}},
			},
		})
	})

	result := client.Recommend(context.Background(), Request{
		UserQuery:         "I love hiking but not football",
		Interests:         []Interest{{ID: 1, Name: "Hiking", Category: "outdoors"}},
		CurrentlySelected: []int{9},
	})

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[1].Content != "I love hiking but not football" {
		t.Fatalf("unexpected upstream messages: %+v", gotBody.Messages)
	}
	if !reflect.DeepEqual(result.ToAdd, []int{1, 2}) || !reflect.DeepEqual(result.ToRemove, []int{9}) {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestRecommendFailsClosedOnUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	})

	result := client.Recommend(context.Background(), Request{
		UserQuery: "anything",
		Interests: []Interest{{ID: 1, Name: "Hiking", Category: "outdoors"}},
	})

	if len(result.ToAdd) != 0 || len(result.ToRemove) != 0 {
		t.Fatalf("upstream failure must yield empty sets, got %+v", result)
	}
	if result.Error == "" {
		t.Fatal("upstream failure must be recorded for observability")
	}
}

func TestRecommendFailsClosedOnUnparsableContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": "sure, I'd suggest hiking!"}},
			},
		})
	})

	result := client.Recommend(context.Background(), Request{
		UserQuery: "anything",
		Interests: []Interest{{ID: 1, Name: "Hiking", Category: "outdoors"}},
	})

	if len(result.ToAdd) != 0 || len(result.ToRemove) != 0 {
		t.Fatalf("unparsable content must yield empty sets, got %+v", result)
	}
	if result.Raw != "sure, I'd suggest hiking!" {
		t.Fatalf("raw model output must be preserved, got %q", result.Raw)
	}
	if result.Error != "" {
		t.Fatalf("a parse miss is not an upstream error, got %q", result.Error)
	}
}

func TestRecommendRespectsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := client.Recommend(ctx, Request{
		UserQuery: "anything",
		Interests: []Interest{{ID: 1, Name: "Hiking", Category: "outdoors"}},
	})
	if len(result.ToAdd) != 0 || result.Error == "" {
		t.Fatalf("cancelled request must fail closed, got %+v", result)
	}
}
