package crates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestGetCrate_Found tests a successful crate lookup, including the
// User-Agent header crates.io requires.
func TestGetCrate_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crates/rustedbytes-sample" {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got != "rustedbytes-page-generator" {
			t.Errorf("Expected User-Agent 'rustedbytes-page-generator', got %q", got)
		}
		fmt.Fprint(w, `{"crate": {"name": "rustedbytes-sample", "newest_version": "1.0.0"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	crate, err := client.GetCrate(context.Background(), "rustedbytes-sample")
	if err != nil {
		t.Fatalf("GetCrate failed: %v", err)
	}
	if crate == nil {
		t.Fatal("Expected a crate, got nil")
	}
	if crate.Name != "rustedbytes-sample" {
		t.Errorf("Expected name 'rustedbytes-sample', got %q", crate.Name)
	}
	if crate.NewestVersion != "1.0.0" {
		t.Errorf("Expected newest version '1.0.0', got %q", crate.NewestVersion)
	}
}

// TestGetCrate_NotFound tests that an unpublished crate maps to nil without
// error.
func TestGetCrate_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"detail": "Not Found"}]}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	crate, err := client.GetCrate(context.Background(), "rustedbytes-missing")
	if err != nil {
		t.Fatalf("Expected 404 to be treated as not published, got error: %v", err)
	}
	if crate != nil {
		t.Errorf("Expected nil crate, got %+v", crate)
	}
}

// TestGetCrate_ServerError tests that other failures surface as typed API
// errors.
func TestGetCrate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetCrate(context.Background(), "rustedbytes-sample")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError in chain, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", apiErr.StatusCode)
	}
	if IsNotFound(err) {
		t.Errorf("Expected non-404 error, IsNotFound returned true")
	}
}

// TestCrateName tests the repository-to-crate name derivation.
func TestCrateName(t *testing.T) {
	tests := []struct {
		repo string
		want string
	}{
		{"rustedbytes-sample", "rustedbytes-sample"},
		{"rustedbytes", "rustedbytes"},
	}

	for _, tt := range tests {
		if got := CrateName(tt.repo); got != tt.want {
			t.Errorf("CrateName(%q) = %q, want %q", tt.repo, got, tt.want)
		}
	}
}

// TestPageURL tests the public crate page URL.
func TestPageURL(t *testing.T) {
	want := "https://crates.io/crates/rustedbytes-sample"
	if got := PageURL("rustedbytes-sample"); got != want {
		t.Errorf("PageURL = %q, want %q", got, want)
	}
}
