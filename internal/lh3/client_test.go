package lh3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchDay(t *testing.T) {
	var gotPath string
	var gotAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		user, pass, ok := r.BasicAuth()
		gotAuth = ok && user == "svc" && pass == "secret"
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":11,"queue":"western","started":"2024-09-03 10:00:00","duration":600,"wait":30}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "svc", "secret", 5*time.Second)
	day := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)

	records, err := client.FetchDay(context.Background(), day)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/chats/2024/09/03" {
		t.Errorf("path = %s, want /chats/2024/09/03", gotPath)
	}
	if !gotAuth {
		t.Error("expected basic auth credentials on the request")
	}
	if len(records) != 1 || records[0].ID != 11 || records[0].Queue != "western" {
		t.Errorf("unexpected records: %+v", records)
	}
	if records[0].Duration == nil || *records[0].Duration != 600 {
		t.Error("duration not decoded")
	}
}

func TestFetchDayNotFoundMeansEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, "svc", "secret", 5*time.Second)
	records, err := client.FetchDay(context.Background(), time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("404 means an empty day, not an error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestFetchDayServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "svc", "secret", 5*time.Second)
	_, err := client.FetchDay(context.Background(), time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestFetchDayBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "svc", "secret", 5*time.Second)
	_, err := client.FetchDay(context.Background(), time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected a decode error")
	}
}
