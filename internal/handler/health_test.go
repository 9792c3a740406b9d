package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"store reachable", nil, http.StatusOK, "ok"},
		{"store down", errors.New("dial tcp 10.0.0.5:5432: connection refused"), http.StatusServiceUnavailable, "unhealthy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deadlineSet bool
			h := New(&mockDB{
				pingFunc: func(ctx context.Context) error {
					_, deadlineSet = ctx.Deadline()
					return tt.pingErr
				},
			}, "postgres", "http://localhost:3000")
			rec := httptest.NewRecorder()

			h.Health(rec, httptest.NewRequest("GET", "/api/health", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if !deadlineSet {
				t.Error("expected ping to run with a deadline")
			}
			if strings.Contains(rec.Body.String(), "10.0.0.5") {
				t.Errorf("ping error leaked into response: %s", rec.Body.String())
			}
			var resp healthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != tt.wantStatus || resp.Store != "postgres" {
				t.Errorf("unexpected body %+v", resp)
			}
		})
	}
}
