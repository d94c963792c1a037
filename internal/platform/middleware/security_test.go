package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityAndVary(t *testing.T) {
	h := Security("/docs")(Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.WriteHeader(http.StatusAccepted)
	})))

	tests := []struct {
		path        string
		wantHeaders bool
	}{
		{"/", true},
		{"/nonexistent", true},
		{"/docs", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := httptest.NewRecorder()
			h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if resp.Code != http.StatusAccepted {
				t.Fatalf("expected downstream status, got %d", resp.Code)
			}
			for _, kv := range securityHeaders {
				got := resp.Header().Get(kv[0])
				if tt.wantHeaders && got != kv[1] {
					t.Errorf("%s: expected %q, got %q", kv[0], kv[1], got)
				}
				if !tt.wantHeaders && got != "" {
					t.Errorf("%s: expected no value on %s, got %q", kv[0], tt.path, got)
				}
			}
			if vary := resp.Header().Values("Vary"); len(vary) != 2 || vary[0] != "Accept" || vary[1] != "Origin" {
				t.Fatalf("expected Vary [Accept Origin], got %v", vary)
			}
		})
	}
}
