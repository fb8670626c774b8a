package colorwish

import (
	"context"
)

// AuthService handles authentication operations.
type AuthService struct {
	client *Client
}

// LoginRequest is the credential payload for the token endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for creating an account.
//
// The registration form's confirmation password is a client-side check only
// and deliberately has no field here; it must never reach the wire.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	AgeRange string `json:"ageRange"`
}

// RegisterResponse is the register endpoint's answer. Deployments differ:
// some return a token, older ones return the created profile. Whichever
// fields the backend sent are populated.
type RegisterResponse struct {
	TokenResponse
	User
}

// Login exchanges credentials for a bearer token.
//
// POST /token
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var resp TokenResponse
	if err := s.client.post(ctx, "/token", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, ErrNoAccessToken
	}
	return &resp, nil
}

// Register creates a new account.
//
// POST /register/
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := s.client.post(ctx, "/register/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the profile of the authenticated user. Use WithBearer
// on the context to fetch with a token that is not yet held by the client's
// token source.
//
// GET /users/me/
func (s *AuthService) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/users/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
