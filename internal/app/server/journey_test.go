package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"evalx/internal/platform/config"
)

// TestUserJourney runs against a real database and is skipped unless
// TEST_DATABASE_URL points at one with the schema loaded.
func TestUserJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		Addr:         ":0",
		DatabaseURL:  dbURL,
		JWTSecret:    "journey-test-secret",
		TokenTTL:     time.Hour,
		Environment:  "test",
		MaxBodyBytes: 1 << 20,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()

	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	client := srv.Client()

	resp, err := client.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d", resp.StatusCode)
	}

	resp, err = client.Get(srv.URL + "/readyz")
	if err != nil {
		t.Fatalf("readyz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz status = %d", resp.StatusCode)
	}

	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	register := map[string]any{
		"role":       "manager",
		"name":       "Journey Manager",
		"email":      email,
		"password":   "journey#pass1",
		"title":      "Engineering Manager",
		"department": "Engineering",
	}
	registerBody, _ := json.Marshal(register)
	resp, err = client.Post(srv.URL+"/auth/register", "application/json", bytes.NewReader(registerBody))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	loginBody, _ := json.Marshal(map[string]any{
		"username": email,
		"password": "journey#pass1",
		"role":     "manager",
	})
	resp, err = client.Post(srv.URL+"/auth/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var login struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	resp.Body.Close()
	if !login.Success || login.Data.Token == "" {
		t.Fatalf("login failed: %+v", login)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/reports/leaderboard", nil)
	req.Header.Set("Authorization", "Bearer "+login.Data.Token)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaderboard status = %d", resp.StatusCode)
	}

	resp, err = client.Get(srv.URL + "/reports/leaderboard")
	if err != nil {
		t.Fatalf("unauthenticated leaderboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated leaderboard status = %d, want 401", resp.StatusCode)
	}
}
