package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume_portal_backend/platform/apperr"
)

func TestSubmitLeadSuccess(t *testing.T) {
	var gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/api/", nil)
	err := client.SubmitLead(context.Background(), Lead{Name: "Jane", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("SubmitLead() error = %v", err)
	}
	if gotPath != "/api/leads" {
		t.Errorf("path = %q, want /api/leads", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotContentType)
	}
}

func TestSubmitLeadConflictKeepsServerMessage(t *testing.T) {
	const serverMsg = "You have already submitted your details today. I'll be in touch soon!"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(serverMsg))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	err := client.SubmitLead(context.Background(), Lead{Name: "Jane", Email: "jane@example.com"})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("SubmitLead() error = %v, want conflict", err)
	}
	if got := apperr.Message(err); got != serverMsg {
		t.Errorf("message = %q, want %q", got, serverMsg)
	}
}

func TestSubmitLeadServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	err := client.SubmitLead(context.Background(), Lead{Name: "Jane", Email: "jane@example.com"})
	if err == nil {
		t.Fatal("SubmitLead() error = nil, want error")
	}
	if got := apperr.Message(err); got != UnexpectedErrorMessage {
		t.Errorf("message = %q, want %q", got, UnexpectedErrorMessage)
	}
}

func TestSubmitLeadTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewHTTPClient(srv.URL, &http.Client{Timeout: time.Second})
	err := client.SubmitLead(context.Background(), Lead{Name: "Jane", Email: "jane@example.com"})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("SubmitLead() error = %v, want unavailable", err)
	}
}

func TestFetchLikeCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":42}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	if got := client.FetchLikeCount(context.Background()); got != 42 {
		t.Errorf("FetchLikeCount() = %d, want 42", got)
	}
}

func TestFetchLikeCountDegradesToZero(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		closed  bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name:    "unreachable",
			handler: func(http.ResponseWriter, *http.Request) {},
			closed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			if tt.closed {
				srv.Close()
			} else {
				defer srv.Close()
			}

			client := NewHTTPClient(srv.URL, &http.Client{Timeout: time.Second})
			if got := client.FetchLikeCount(context.Background()); got != 0 {
				t.Errorf("FetchLikeCount() = %d, want 0", got)
			}
		})
	}
}

func TestMutateLikeCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":7}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	got, err := client.MutateLikeCount(context.Background(), ActionIncrement)
	if err != nil {
		t.Fatalf("MutateLikeCount() error = %v", err)
	}
	if got != 7 {
		t.Errorf("MutateLikeCount() = %d, want 7", got)
	}
}

func TestMutateLikeCountFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, nil)
	_, err := client.MutateLikeCount(context.Background(), ActionDecrement)
	if err == nil {
		t.Fatal("MutateLikeCount() error = nil, want error")
	}
	if got := apperr.Message(err); got != UpdateFailedMessage {
		t.Errorf("message = %q, want %q", got, UpdateFailedMessage)
	}
}
