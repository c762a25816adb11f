package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("4th request should be blocked")
	}
}

func TestLimiter_IndependentKeys(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("a") {
		t.Error("first key should be allowed")
	}
	if !l.Allow("b") {
		t.Error("second key should be allowed independently")
	}
	if l.Allow("a") {
		t.Error("repeat on first key should be blocked")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)

	l.Allow("x")
	if l.Allow("x") {
		t.Fatal("should be blocked before reset")
	}
	l.Reset("x")
	if !l.Allow("x") {
		t.Error("should be allowed after reset")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr with port", "203.0.113.7:4433", "", "", "203.0.113.7"},
		{"x-forwarded-for single", "10.0.0.1:80", "198.51.100.9", "", "198.51.100.9"},
		{"x-forwarded-for chain", "10.0.0.1:80", "198.51.100.9, 10.0.0.2", "", "198.51.100.9"},
		{"x-real-ip", "10.0.0.1:80", "", "198.51.100.10", "198.51.100.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	l := New(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/contact", nil)
	req.RemoteAddr = "203.0.113.7:1000"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", rec.Code)
	}

	// Safe methods are never counted or blocked.
	getReq := httptest.NewRequest("GET", "/contact", nil)
	getReq.RemoteAddr = "203.0.113.7:1000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, getReq)
	if rec.Code != http.StatusOK {
		t.Errorf("GET after limit: status = %d, want 200", rec.Code)
	}
}
