// Package colorwish provides the Go client SDK for the ColorWish
// coloring-book API: authentication, the current-user profile, and the
// sample content shown on the product's dashboard and gallery.
package colorwish

import "time"

// User represents a ColorWish account profile.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	AgeRange string `json:"ageRange,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	IsActive bool   `json:"is_active,omitempty"`
}

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	// AccessToken is the opaque bearer credential.
	AccessToken string `json:"access_token"`
	// TokenType is typically "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// AgeRanges are the age ranges offered at registration.
var AgeRanges = []string{
	"3-5 years",
	"6-8 years",
	"9-12 years",
	"13+ years",
	"Parent/Guardian",
}

// Difficulty rates a coloring page.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ColoringPage is a printable template shown on the dashboard.
type ColoringPage struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Creation is a finished coloring in the user's gallery.
type Creation struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
