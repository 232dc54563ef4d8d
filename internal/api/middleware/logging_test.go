package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

type hijackableWriter struct {
	http.ResponseWriter
	hijacked bool
	err      error
}

func (h *hijackableWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h.hijacked = true
	return nil, nil, h.err
}

func (h *hijackableWriter) Flush() {
	if f, ok := h.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// The websocket upgrade needs http.Hijacker to survive the logging wrapper.
func TestLoggingKeepsHijackerForUpgrades(t *testing.T) {
	wantErr := errors.New("hijack invoked")
	writer := &hijackableWriter{
		ResponseWriter: httptest.NewRecorder(),
		err:            wantErr,
	}

	reached := false
	handler := Logging()(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("response writer lost http.Hijacker")
		}
		if _, _, err := hj.Hijack(); !errors.Is(err, wantErr) {
			t.Fatalf("hijack error = %v", err)
		}
	})

	handler(writer, httptest.NewRequest(http.MethodGet, "/api/ws/v1/feeds/tenants", nil))

	if !reached {
		t.Fatal("inner handler was not invoked")
	}
	if !writer.hijacked {
		t.Fatal("underlying Hijack was not called")
	}
}

func TestLoggingSetsRequestID(t *testing.T) {
	handler := Logging()(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("no request id generated")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("X-Request-ID", "req-upstream")
	handler(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-upstream" {
		t.Fatalf("request id = %q, want the caller's id echoed", got)
	}
}

func TestStatusRecorderCapturesStatusAndSize(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}

	rec.WriteHeader(http.StatusTeapot)
	n, err := rec.Write([]byte("short and stout"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.status != http.StatusTeapot {
		t.Fatalf("status = %d", rec.status)
	}
	if rec.size != n || n != len("short and stout") {
		t.Fatalf("size = %d", rec.size)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if _, err := rec.Write([]byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.status != http.StatusOK {
		t.Fatalf("implicit status = %d", rec.status)
	}
}
