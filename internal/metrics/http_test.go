package metrics

import "testing"

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{500, "5xx"},
		{599, "5xx"},
		{0, "unknown"},
		{99, "unknown"},
		{600, "unknown"},
	}

	for _, tt := range tests {
		if got := statusClass(tt.code); got != tt.want {
			t.Errorf("statusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	skipped := []string{
		"/metrics",
		"/health",
		"/ready",
		"/api/metrics",
		"/api/health",
		"/api/ready",
		"/swagger/index.html",
		"/swagger/doc.json",
	}
	for _, path := range skipped {
		if !ShouldSkipEndpoint(path) {
			t.Errorf("ShouldSkipEndpoint(%q) = false, want true", path)
		}
	}

	measured := []string{
		"/api/posts",
		"/api/boards",
		"/api/users/login",
		"/healthz-lookalike",
	}
	for _, path := range measured {
		if ShouldSkipEndpoint(path) {
			t.Errorf("ShouldSkipEndpoint(%q) = true, want false", path)
		}
	}
}
