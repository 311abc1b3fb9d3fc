package quiz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSheetClient_Fetch(t *testing.T) {
	payload := `[
		{"statement": "Q1", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correct_option": "b"},
		{"statement": "Q2", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correct_option": "a"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewSheetClient(5 * time.Second)
	set, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if set.At(0).Statement != "Q1" || set.At(1).Statement != "Q2" {
		t.Errorf("order not preserved: %q, %q", set.At(0).Statement, set.At(1).Statement)
	}
	if set.At(0).Correct != "b" {
		t.Errorf("At(0).Correct = %q, want %q", set.At(0).Correct, "b")
	}
}

func TestSheetClient_Fetch_MalformedRecord(t *testing.T) {
	payload := `[
		{"statement": "Q1", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correct_option": "b"},
		{"statement": "Q2", "option1": "a", "option2": "b", "option3": "c", "option4": "d"}
	]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := NewSheetClient(5 * time.Second)
	if _, err := client.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() expected error for record missing correct_option, got nil")
	}
}

func TestSheetClient_Fetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewSheetClient(5 * time.Second)
	if _, err := client.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() expected error for HTTP 404, got nil")
	}
}

func TestSheetClient_Fetch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	client := NewSheetClient(5 * time.Second)
	if _, err := client.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() expected error for non-array payload, got nil")
	}
}
