package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerRecordsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"schools":[]}`))
	})

	logged := Logger(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/schools", nil)
	rec := httptest.NewRecorder()
	logged.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v", err)
	}

	if entry["method"] != "GET" {
		t.Errorf("method = %v", entry["method"])
	}
	if entry["path"] != "/api/schools" {
		t.Errorf("path = %v", entry["path"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v", entry["status"])
	}
	if entry["message"] != "request completed" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry["duration"]; !ok {
		t.Error("log entry missing duration")
	}
}

func TestLoggerCapturesHandlerStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"no data in window", http.StatusUnprocessableEntity},
		{"unknown school", http.StatusNotFound},
		{"implicit ok", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != http.StatusOK {
					w.WriteHeader(tt.status)
				}
				w.Write([]byte("x"))
			})

			logged := Logger(logger)(handler)
			req := httptest.NewRequest(http.MethodGet, "/api/trends", nil)
			logged.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log entry: %v", err)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
		})
	}
}
