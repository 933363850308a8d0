package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func probeStatus(t *testing.T, handler http.HandlerFunc) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/", nil))

	var body healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec.Code, body.Status
}

func TestHealthServer_Liveness(t *testing.T) {
	server := NewHealthServer(":0", discardLogger())

	code, status := probeStatus(t, server.handleLiveness)
	if code != http.StatusOK || status != "ok" {
		t.Errorf("liveness = %d %q, want 200 ok", code, status)
	}

	// Liveness is independent of readiness.
	server.SetReady(false)
	if code, _ := probeStatus(t, server.handleLiveness); code != http.StatusOK {
		t.Errorf("liveness while not ready = %d, want 200", code)
	}
}

func TestHealthServer_ReadinessTransitions(t *testing.T) {
	server := NewHealthServer(":0", discardLogger())

	code, status := probeStatus(t, server.handleReadiness)
	if code != http.StatusServiceUnavailable || status != "not ready" {
		t.Errorf("initial readiness = %d %q, want 503 not ready", code, status)
	}

	server.SetReady(true)
	if code, status := probeStatus(t, server.handleReadiness); code != http.StatusOK || status != "ok" {
		t.Errorf("readiness after SetReady(true) = %d %q, want 200 ok", code, status)
	}

	// A draining worker flips back to not-ready before shutdown.
	server.SetReady(false)
	if code, _ := probeStatus(t, server.handleReadiness); code != http.StatusServiceUnavailable {
		t.Errorf("readiness after SetReady(false) = %d, want 503", code)
	}
}

func TestHealthServer_GracefulShutdown(t *testing.T) {
	server := NewHealthServer("localhost:19095", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(ctx)
	}()

	// Wait for the listener to come up.
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://localhost:19095/health")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()

	select {
	case err := <-errChan:
		if err != http.ErrServerClosed {
			t.Errorf("Start returned %v, want http.ErrServerClosed", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown timeout")
	}

	if _, err := http.Get("http://localhost:19095/health"); err == nil {
		t.Error("expected connection error after shutdown")
	}
}

func TestNewHealthServer(t *testing.T) {
	server := NewHealthServer(":9091", discardLogger())

	if server.addr != ":9091" {
		t.Errorf("addr = %q, want :9091", server.addr)
	}
	if server.ready.Load() {
		t.Error("new server must report not ready")
	}
}
