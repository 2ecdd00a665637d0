package aoe4world

import (
	"net/http"
	"testing"

	"github.com/Sternrassler/aoe4world-client/pkg/client"
	"github.com/Sternrassler/aoe4world-client/pkg/pagination"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "zero config is usable",
			config:      Config{},
			expectError: false,
		},
		{
			name:        "relative base URL",
			config:      Config{BaseURL: "aoe4world.com/api/v0"},
			expectError: true,
		},
		{
			name:        "garbage base URL",
			config:      Config{BaseURL: "://nope"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			defer c.Close()

			if c.BaseURL() != client.DefaultBaseURL {
				t.Errorf("BaseURL = %q, want %q", c.BaseURL(), client.DefaultBaseURL)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer c.Close()

	if c.perPage != pagination.DefaultPerPage {
		t.Errorf("perPage = %d, want %d", c.perPage, pagination.DefaultPerPage)
	}
	if c.owned == nil {
		t.Error("Expected an owned transport when Config.Transport is nil")
	}

	trailing, err := New(Config{BaseURL: "https://example.com/api/"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer trailing.Close()

	if trailing.BaseURL() != "https://example.com/api" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", trailing.BaseURL())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != client.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, client.DefaultBaseURL)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
	if cfg.PerPage != pagination.DefaultPerPage {
		t.Errorf("PerPage = %d, want %d", cfg.PerPage, pagination.DefaultPerPage)
	}
	if cfg.Concurrency != pagination.DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", cfg.Concurrency, pagination.DefaultConcurrency)
	}
}

func TestClient_CloseWithCallerTransport(t *testing.T) {
	c, err := New(Config{Transport: http.DefaultClient})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if c.owned != nil {
		t.Error("Expected no owned transport when Config.Transport is set")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestEndpointURL(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com/api/v0", Transport: http.DefaultClient})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := c.endpointURL("/players/1234", nil)
	if want := "https://example.com/api/v0/players/1234"; got != want {
		t.Errorf("endpointURL = %q, want %q", got, want)
	}
}
