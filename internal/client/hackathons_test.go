// ABOUTME: Tests for hackathon listing, search and registration endpoints

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHackathons_FilterParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hackathons/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Hackathon{{ID: 1, Name: "HackWeek"}})
	}))
	defer server.Close()

	c := New(server.URL)
	events, err := c.Hackathons(context.Background(), "ai", "remote", "upcoming")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "category=ai&mode=remote&status=upcoming" {
		t.Errorf("unexpected query %q", gotQuery)
	}
	if len(events) != 1 || events[0].Name != "HackWeek" {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestHackathons_NoFiltersOmitsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]Hackathon{})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Hackathons(context.Background(), "", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearchHackathons_EscapesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hackathons/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "climate tech" {
			t.Errorf("expected q=%q, got %q", "climate tech", got)
		}
		json.NewEncoder(w).Encode([]Hackathon{})
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.SearchHackathons(context.Background(), "climate tech"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterForHackathon_Path(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.RegisterForHackathon(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/hackathons/9/register" {
		t.Errorf("got %s %s", gotMethod, gotPath)
	}
}

func TestRegisterForHackathon_AlreadyRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "already registered"})
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.RegisterForHackathon(context.Background(), 9)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "already registered" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMyRegistrations_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hackathons/my-registrations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Hackathon{{ID: 3}, {ID: 7}})
	}))
	defer server.Close()

	c := New(server.URL)
	events, err := c.MyRegistrations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 registrations, got %d", len(events))
	}
}
