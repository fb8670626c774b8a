package colorwish

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAuthService_Login(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/token" {
			t.Errorf("expected /token, got %s", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "a@b.com" || req.Password != "secret1" {
			t.Errorf("unexpected credentials: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "T", TokenType: "bearer"})
	})

	tok, err := client.Auth.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "T" {
		t.Errorf("expected access token 'T', got %q", tok.AccessToken)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	})

	_, err := client.Auth.Login(context.Background(), "bad@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %T", err)
	}
	if !apiErr.IsUnauthorized() {
		t.Errorf("expected unauthorized, got status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Incorrect email or password" {
		t.Errorf("expected backend detail message, got %q", apiErr.Message)
	}
}

func TestAuthService_Login_NoAccessToken(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token_type": "bearer"})
	})

	_, err := client.Auth.Login(context.Background(), "a@b.com", "secret1")
	if err != ErrNoAccessToken {
		t.Fatalf("expected ErrNoAccessToken, got %v", err)
	}
}

func TestAuthService_Register_TokenResponse(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register/" {
			t.Errorf("expected /register/, got %s", r.URL.Path)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := req["confirmPassword"]; ok {
			t.Error("confirmation password must never be transmitted")
		}
		if req["ageRange"] != "6-8 years" {
			t.Errorf("expected ageRange in payload, got %v", req["ageRange"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": "T"})
	})

	resp, err := client.Auth.Register(context.Background(), RegisterRequest{
		Username: "sam",
		Email:    "sam@b.com",
		Password: "secret1",
		AgeRange: "6-8 years",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "T" {
		t.Errorf("expected access token, got %q", resp.AccessToken)
	}
}

func TestAuthService_Register_ProfileResponse(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       7,
			"username": "sam",
			"email":    "sam@b.com",
		})
	})

	resp, err := client.Auth.Register(context.Background(), RegisterRequest{
		Username: "sam", Email: "sam@b.com", Password: "secret1", AgeRange: "6-8 years",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "" {
		t.Errorf("expected no token, got %q", resp.AccessToken)
	}
	if resp.ID != 7 || resp.Username != "sam" {
		t.Errorf("expected created profile in response, got %+v", resp)
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	})

	_, err := client.Auth.Register(context.Background(), RegisterRequest{
		Username: "sam", Email: "sam@b.com", Password: "secret1", AgeRange: "6-8 years",
	})
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if !apiErr.IsValidationError() {
		t.Errorf("expected validation error, got status %d", apiErr.StatusCode)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/users/me/" {
			t.Errorf("expected /users/me/, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{ID: 1, Username: "a", Email: "a@b.com", AgeRange: "6-8 years"})
	})

	user, err := client.Auth.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Username != "a" || user.AgeRange != "6-8 years" {
		t.Errorf("unexpected user: %+v", user)
	}
}
