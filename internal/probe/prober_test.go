package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAvailable_StatusBoundaries(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{302, true},
		{399, true},
		{400, false},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		if got := available(tt.status); got != tt.want {
			t.Errorf("available(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCheck_OKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("probe used method %s, want HEAD", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	res := New(2 * time.Second).Check(context.Background(), srv.URL)
	if !res.Available {
		t.Errorf("Available = false, want true (detail: %s)", res.Detail)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", res.StatusCode)
	}
	if res.Detail != "HTTP 200" {
		t.Errorf("Detail = %q, want %q", res.Detail, "HTTP 200")
	}
}

func TestCheck_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res := New(2 * time.Second).Check(context.Background(), srv.URL)
	if res.Available {
		t.Error("Available = true for HTTP 404, want false")
	}
	if res.Detail != "HTTP 404" {
		t.Errorf("Detail = %q, want %q", res.Detail, "HTTP 404")
	}
}

func TestCheck_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := New(2 * time.Second).Check(context.Background(), url)
	if res.Available {
		t.Error("Available = true for a closed port, want false")
	}
	if res.Detail == "" {
		t.Error("Detail should describe the connection failure")
	}
	if res.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for a transport failure", res.StatusCode)
	}
}

func TestCheck_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	res := New(50 * time.Millisecond).Check(context.Background(), srv.URL)
	if res.Available {
		t.Error("Available = true for a timed-out probe, want false")
	}
	if res.Detail != "timeout" {
		t.Errorf("Detail = %q, want %q", res.Detail, "timeout")
	}
}

func TestCheck_InvalidURL(t *testing.T) {
	res := New(time.Second).Check(context.Background(), "http://bad url with spaces")
	if res.Available {
		t.Error("Available = true for an unparsable URL, want false")
	}
	if res.Detail == "" {
		t.Error("Detail should describe the parse failure")
	}
}

func TestCheck_RTMPOpenPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	res := New(2 * time.Second).Check(context.Background(), "rtmp://"+ln.Addr().String()+"/live/stream")
	if !res.Available {
		t.Errorf("Available = false for an open rtmp port (detail: %s)", res.Detail)
	}
}

func TestCheck_RTMPClosedPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	res := New(time.Second).Check(context.Background(), "rtmp://"+addr+"/live")
	if res.Available {
		t.Error("Available = true for a closed rtmp port, want false")
	}
}

func TestCheck_RTMPInvalidURL(t *testing.T) {
	res := New(time.Second).Check(context.Background(), "rtmp://")
	if res.Available {
		t.Error("Available = true for an invalid rtmp URL, want false")
	}
	if !strings.Contains(res.Detail, "invalid") {
		t.Errorf("Detail = %q, want invalid-URL description", res.Detail)
	}
}

func TestCheck_RecordsLatency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	res := New(2 * time.Second).Check(context.Background(), srv.URL)
	if res.Latency <= 0 {
		t.Errorf("Latency = %v, want > 0", res.Latency)
	}
}
